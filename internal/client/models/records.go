package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/forestadmin/internal/common"
)

var (
	ErrRowNotFound      = errors.New("timestamp row not found")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownField     = errors.New("unknown field")
	ErrRowLimitExceeded = errors.New("cannot add more rows than experiences")
)

// Kind names a record kind.
type Kind string

const (
	KindFacility   Kind = "forest"
	KindExperience Kind = "experience"
	KindVideo      Kind = "video"
	KindNotice     Kind = "notice"
)

// Seasons is the fixed category domain of video records.
var Seasons = []string{"A", "B", "C", "D"}

func IsSeason(s string) bool {
	for _, v := range Seasons {
		if v == s {
			return true
		}
	}
	return false
}

const (
	DefaultExpCateg1 = "E"
	DefaultExpCateg2 = "E1"
	NoticeCategory   = "N"
)

// Facility is a forest recreation facility.
type Facility struct {
	SaveState `validate:"-"`

	SeqNo       int
	Name        string `validate:"notblank" label:"name"`
	MainYn      string
	Addr1       string `validate:"notblank" label:"address"`
	Addr2       string `validate:"notblank" label:"detailed address"`
	TelNo       string `validate:"notblank" label:"phone number"`
	BusinessNum string `validate:"notblank" label:"business number"`
	Desc        string `validate:"notblank" label:"description"`
	SimpleDesc  string `validate:"notblank" label:"summary"`

	Images *AttachmentSet `validate:"-"`
	Map    *AttachmentSet `validate:"-"`
}

func NewFacility(imagePolicy, mapPolicy Policy) *Facility {
	return &Facility{
		MainYn: common.FlagNo,
		Images: NewAttachmentSet(CategoryForestImage, imagePolicy),
		Map:    NewAttachmentSet(CategoryForestMap, mapPolicy),
	}
}

func (f *Facility) Sets() []*AttachmentSet { return []*AttachmentSet{f.Images, f.Map} }

// FacilityPatch carries one optional value per editable field.
type FacilityPatch struct {
	Name, MainYn, Addr1, Addr2, TelNo, BusinessNum, Desc, SimpleDesc *string
}

func (f *Facility) Apply(p FacilityPatch) {
	set(&f.Name, p.Name)
	set(&f.MainYn, p.MainYn)
	set(&f.Addr1, p.Addr1)
	set(&f.Addr2, p.Addr2)
	set(&f.TelNo, p.TelNo)
	set(&f.BusinessNum, p.BusinessNum)
	set(&f.Desc, p.Desc)
	set(&f.SimpleDesc, p.SimpleDesc)
}

// FacilityField builds a patch from a field name typed by a user.
func FacilityField(field, value string) (FacilityPatch, error) {
	var p FacilityPatch
	switch strings.ToLower(field) {
	case "name":
		p.Name = &value
	case "main":
		p.MainYn = &value
	case "addr1":
		p.Addr1 = &value
	case "addr2":
		p.Addr2 = &value
	case "tel":
		p.TelNo = &value
	case "biz":
		p.BusinessNum = &value
	case "desc":
		p.Desc = &value
	case "summary":
		p.SimpleDesc = &value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return p, nil
}

// Experience is one experience program of a facility.
type Experience struct {
	SaveState `validate:"-"`

	SeqNo       int
	ForestSeqNo int
	Name        string `validate:"notblank" label:"name"`
	Categ1      string `validate:"notblank" label:"category"`
	Categ2      string `validate:"notblank" label:"sub category"`
	Title       string `validate:"notblank" label:"title"`
	Desc        string `validate:"notblank" label:"description"`
	MainYn      string

	Images *AttachmentSet `validate:"-"`
}

func NewExperience(forestSeqNo int, imagePolicy Policy) *Experience {
	return &Experience{
		ForestSeqNo: forestSeqNo,
		Categ1:      DefaultExpCateg1,
		Categ2:      DefaultExpCateg2,
		MainYn:      common.FlagNo,
		Images:      NewAttachmentSet(CategoryExperience, imagePolicy),
	}
}

func (e *Experience) Sets() []*AttachmentSet { return []*AttachmentSet{e.Images} }

type ExperiencePatch struct {
	Name, Categ1, Categ2, Title, Desc, MainYn *string
}

func (e *Experience) Apply(p ExperiencePatch) {
	set(&e.Name, p.Name)
	set(&e.Categ1, p.Categ1)
	set(&e.Categ2, p.Categ2)
	set(&e.Title, p.Title)
	set(&e.Desc, p.Desc)
	set(&e.MainYn, p.MainYn)
}

func ExperienceField(field, value string) (ExperiencePatch, error) {
	var p ExperiencePatch
	switch strings.ToLower(field) {
	case "name":
		p.Name = &value
	case "categ1":
		p.Categ1 = &value
	case "categ2":
		p.Categ2 = &value
	case "title":
		p.Title = &value
	case "desc":
		p.Desc = &value
	case "main":
		p.MainYn = &value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return p, nil
}

// TimestampRow marks where in a video an experience appears.
type TimestampRow struct {
	ExpSeqNo  int
	PointTime string
	Sort      int
}

// Video is one promotional video of a facility, tagged with a season.
type Video struct {
	SaveState `validate:"-"`

	SeqNo       int
	ForestSeqNo int
	Categ1      string `validate:"required,season" label:"season"`

	File *AttachmentSet `validate:"-"`

	rowsMu sync.Mutex
	rows   []TimestampRow
}

func NewVideo(forestSeqNo int, season string, filePolicy Policy) *Video {
	return &Video{
		ForestSeqNo: forestSeqNo,
		Categ1:      season,
		File:        NewAttachmentSet(CategoryVideo, filePolicy),
	}
}

func (v *Video) Sets() []*AttachmentSet { return []*AttachmentSet{v.File} }

// SetSeason changes the season tag. Uniqueness within a list is checked by
// the list at add and save time.
func (v *Video) SetSeason(season string) error {
	if !IsSeason(season) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, season)
	}
	v.Categ1 = season
	return nil
}

func (v *Video) Rows() []TimestampRow {
	v.rowsMu.Lock()
	defer v.rowsMu.Unlock()
	return append([]TimestampRow(nil), v.rows...)
}

func (v *Video) SetRows(rows []TimestampRow) {
	v.rowsMu.Lock()
	defer v.rowsMu.Unlock()
	v.rows = append([]TimestampRow(nil), rows...)
}

// AddRow appends a blank row unless the video already has max rows.
func (v *Video) AddRow(max int) error {
	v.rowsMu.Lock()
	defer v.rowsMu.Unlock()

	if len(v.rows) >= max {
		return ErrRowLimitExceeded
	}
	v.rows = append(v.rows, TimestampRow{Sort: len(v.rows) + 1})
	return nil
}

func (v *Video) UpdateRow(i int, expSeqNo int, pointTime string) error {
	v.rowsMu.Lock()
	defer v.rowsMu.Unlock()

	if i < 0 || i >= len(v.rows) {
		return ErrRowNotFound
	}
	v.rows[i].ExpSeqNo = expSeqNo
	v.rows[i].PointTime = pointTime
	return nil
}

func (v *Video) RemoveRow(i int) error {
	v.rowsMu.Lock()
	defer v.rowsMu.Unlock()

	if i < 0 || i >= len(v.rows) {
		return ErrRowNotFound
	}
	v.rows = append(v.rows[:i], v.rows[i+1:]...)
	return nil
}

// FilledRows returns the rows with a non-blank point time, in order.
func (v *Video) FilledRows() []TimestampRow {
	v.rowsMu.Lock()
	defer v.rowsMu.Unlock()

	out := make([]TimestampRow, 0, len(v.rows))
	for _, r := range v.rows {
		if !common.Blank(r.PointTime) {
			out = append(out, r)
		}
	}
	return out
}

// Notice is a board post.
type Notice struct {
	SaveState `validate:"-"`

	SeqNo    int
	Title    string `validate:"notblank" label:"title"`
	Contents string `validate:"notblank" label:"contents"`
	URL1     string
	URL2     string
	URL3     string
	UseYn    string
}

func NewNotice() *Notice {
	return &Notice{UseYn: common.FlagYes}
}

type NoticePatch struct {
	Title, Contents, URL1, URL2, URL3, UseYn *string
}

func (n *Notice) Apply(p NoticePatch) {
	set(&n.Title, p.Title)
	set(&n.Contents, p.Contents)
	set(&n.URL1, p.URL1)
	set(&n.URL2, p.URL2)
	set(&n.URL3, p.URL3)
	set(&n.UseYn, p.UseYn)
}

func NoticeField(field, value string) (NoticePatch, error) {
	var p NoticePatch
	switch strings.ToLower(field) {
	case "title":
		p.Title = &value
	case "contents":
		p.Contents = &value
	case "url1":
		p.URL1 = &value
	case "url2":
		p.URL2 = &value
	case "url3":
		p.URL3 = &value
	case "use":
		p.UseYn = &value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return p, nil
}

// ExpCode is a selectable experience for video timestamp rows.
type ExpCode struct {
	ExpSeqNo int
	Name     string
}

// Code is an entry of a server code list.
type Code struct {
	CD   string
	Name string
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
