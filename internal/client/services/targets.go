package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/client/wire"
)

func imageXML(set *models.AttachmentSet) (string, error) {
	active := set.Active()
	rows := make([]wire.ImageRow, 0, len(active))
	for _, a := range active {
		rows = append(rows, wire.ImageRow{URL: a.RemoteURL, Sort: a.Sort})
	}
	s, err := wire.Encode(rows)
	if err != nil {
		return "", fmt.Errorf("encode %s images: %w", set.Category(), err)
	}
	return s, nil
}

func detailXML(rows []models.TimestampRow) (string, error) {
	out := make([]wire.DetailRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, wire.DetailRow{ExpSeqNo: r.ExpSeqNo, PointTime: r.PointTime, Sort: r.Sort})
	}
	s, err := wire.Encode(out)
	if err != nil {
		return "", fmt.Errorf("encode video rows: %w", err)
	}
	return s, nil
}

type facilityTarget struct {
	f      *models.Facility
	client api.Client
}

func (t facilityTarget) kind() models.Kind             { return models.KindFacility }
func (t facilityTarget) state() *models.SaveState      { return &t.f.SaveState }
func (t facilityTarget) sets() []*models.AttachmentSet { return t.f.Sets() }
func (t facilityTarget) id() int                       { return t.f.SeqNo }
func (t facilityTarget) assign(id int)                 { t.f.SeqNo = id }

func (t facilityTarget) persist(ctx context.Context) (int, error) {
	xml, err := imageXML(t.f.Images)
	if err != nil {
		return 0, err
	}
	f := t.f
	return t.client.SaveForest(ctx, api.ForestSave{
		ForestSeqNo:    f.SeqNo,
		Name:           f.Name,
		Addr1:          f.Addr1,
		Addr2:          f.Addr2,
		BusinessNumber: f.BusinessNum,
		Descript:       f.Desc,
		SimpleDescript: f.SimpleDesc,
		MainYn:         f.MainYn,
		TelNo:          f.TelNo,
		MapImgURL:      f.Map.FirstURL(),
		XMLFileData:    xml,
	})
}

type experienceTarget struct {
	e      *models.Experience
	client api.Client
}

func (t experienceTarget) kind() models.Kind             { return models.KindExperience }
func (t experienceTarget) state() *models.SaveState      { return &t.e.SaveState }
func (t experienceTarget) sets() []*models.AttachmentSet { return t.e.Sets() }
func (t experienceTarget) id() int                       { return t.e.SeqNo }
func (t experienceTarget) assign(id int)                 { t.e.SeqNo = id }

func (t experienceTarget) persist(ctx context.Context) (int, error) {
	xml, err := imageXML(t.e.Images)
	if err != nil {
		return 0, err
	}
	e := t.e
	return t.client.SaveExperience(ctx, api.ExperienceSave{
		ForestSeqNo: e.ForestSeqNo,
		ExpSeqNo:    e.SeqNo,
		Name:        e.Name,
		Categ1:      e.Categ1,
		Categ2:      e.Categ2,
		Title:       e.Title,
		Descript:    e.Desc,
		MainYn:      e.MainYn,
		XMLFileData: xml,
	})
}

type videoTarget struct {
	v      *models.Video
	client api.Client
}

func (t videoTarget) kind() models.Kind             { return models.KindVideo }
func (t videoTarget) state() *models.SaveState      { return &t.v.SaveState }
func (t videoTarget) sets() []*models.AttachmentSet { return t.v.Sets() }
func (t videoTarget) id() int                       { return t.v.SeqNo }
func (t videoTarget) assign(id int)                 { t.v.SeqNo = id }

func (t videoTarget) persist(ctx context.Context) (int, error) {
	xml, err := detailXML(t.v.FilledRows())
	if err != nil {
		return 0, err
	}
	v := t.v
	return t.client.SaveMovie(ctx, api.MovieSave{
		ForestSeqNo:   v.ForestSeqNo,
		MovieSeqNo:    v.SeqNo,
		Categ1:        v.Categ1,
		URL:           v.File.FirstURL(),
		XMLDetailData: xml,
	})
}

type noticeTarget struct {
	n      *models.Notice
	client api.Client
}

func (t noticeTarget) kind() models.Kind             { return models.KindNotice }
func (t noticeTarget) state() *models.SaveState      { return &t.n.SaveState }
func (t noticeTarget) sets() []*models.AttachmentSet { return nil }
func (t noticeTarget) id() int                       { return t.n.SeqNo }
func (t noticeTarget) assign(id int)                 { t.n.SeqNo = id }

func (t noticeTarget) persist(ctx context.Context) (int, error) {
	n := t.n
	return t.client.SaveBoard(ctx, api.BoardSave{
		BoardSeqNo: n.SeqNo,
		Title:      n.Title,
		Contents:   n.Contents,
		Categ:      models.NoticeCategory,
		URL1:       n.URL1,
		URL2:       n.URL2,
		URL3:       n.URL3,
		UseYn:      n.UseYn,
	})
}
