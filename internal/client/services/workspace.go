package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

var ErrNoDrafts = errors.New("drafts are not configured")

// Workspace is the root of one editing session. It owns the dialog and
// every editor; children receive what they need through constructors.
type Workspace struct {
	Dialog      *dialog.Dialog
	Facility    *FacilityEditor
	Experiences *ExperienceList
	Videos      *VideoList
	Notice      *NoticeEditor

	client api.Client
	drafts drafts.Repository
	log    logging.Logger
}

// NewWorkspace wires a session. When d.Dialog is nil a fresh dialog is
// created. repo may be nil, which disables drafts.
func NewWorkspace(d Deps, repo drafts.Repository) *Workspace {
	if d.Dialog == nil {
		d.Dialog = dialog.New()
	}
	orch := NewOrchestrator(d)
	val := NewValidator()
	exps := NewExperienceList(d, orch, val)

	return &Workspace{
		Dialog:      d.Dialog,
		Facility:    NewFacilityEditor(d, orch, val),
		Experiences: exps,
		Videos:      NewVideoList(d, orch, val, exps),
		Notice:      NewNoticeEditor(d, orch, val),
		client:      d.Client,
		drafts:      repo,
		log:         d.logger(),
	}
}

// NewForest starts an unsaved facility with empty lists.
func (w *Workspace) NewForest() {
	w.Facility.New()
	w.Experiences.Clear()
	w.Experiences.SetForest(0)
	w.Videos.Clear()
	w.Videos.SetForest(0)
}

// LoadForest loads a facility together with its experiences and videos.
func (w *Workspace) LoadForest(ctx context.Context, forestSeqNo int) error {
	if err := w.Facility.Load(ctx, forestSeqNo); err != nil {
		return err
	}
	if err := w.Experiences.Load(ctx, forestSeqNo); err != nil {
		return err
	}
	if err := w.Videos.Load(ctx, forestSeqNo); err != nil {
		return err
	}
	w.log.Info(ctx, "forest loaded", "id", forestSeqNo,
		"experiences", w.Experiences.Len(), "videos", w.Videos.Len())
	return nil
}

// SaveFacility validates and saves the facility. A newly assigned id is
// handed to the experience and video lists right away.
func (w *Workspace) SaveFacility(ctx context.Context, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	res, err := w.Facility.ValidateAndSave(ctx, onSuccess)
	if err != nil {
		return res, err
	}
	if res.ID != 0 {
		w.Experiences.SetForest(res.ID)
		w.Videos.SetForest(res.ID)
	}
	return res, nil
}

// DeleteForest asks for confirmation, then deletes the facility and
// clears the lists.
func (w *Workspace) DeleteForest() {
	w.Facility.RequestDelete(func(context.Context) {
		w.NewForest()
	})
}

func (w *Workspace) ListForests(ctx context.Context, page, size int) (api.Page[api.ForestSummary], error) {
	return w.client.ListForests(ctx, page, size)
}

func (w *Workspace) ListNotices(ctx context.Context, page, size int) (api.Page[api.BoardSummary], error) {
	return w.client.ListBoards(ctx, page, size)
}

// Snapshot is the serializable state of a workspace.
type Snapshot struct {
	Facility    models.FacilitySnapshot     `json:"facility"`
	ForestSeqNo int                         `json:"forest_seq_no"`
	Experiences []models.ExperienceSnapshot `json:"experiences"`
	Videos      []models.VideoSnapshot      `json:"videos"`
	Notice      models.NoticeSnapshot       `json:"notice"`
}

func (w *Workspace) Snapshot() Snapshot {
	return Snapshot{
		Facility:    w.Facility.Record().Snapshot(),
		ForestSeqNo: w.Experiences.ForestSeqNo(),
		Experiences: w.Experiences.Snapshot(),
		Videos:      w.Videos.Snapshot(),
		Notice:      w.Notice.Record().Snapshot(),
	}
}

// Restore replaces every editor's state. The dialog is left alone.
func (w *Workspace) Restore(s Snapshot) {
	w.Facility.New().Restore(s.Facility)
	w.Experiences.Restore(s.ForestSeqNo, s.Experiences)
	w.Videos.Restore(s.ForestSeqNo, s.Videos)
	w.Notice.New().Restore(s.Notice)
}

// SaveDraft stores the current state under name.
func (w *Workspace) SaveDraft(ctx context.Context, name string) (*drafts.Draft, error) {
	if w.drafts == nil {
		return nil, ErrNoDrafts
	}
	snap := w.Snapshot()
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	d := &drafts.Draft{Name: name, ForestSeqNo: snap.ForestSeqNo, Payload: payload}
	if err := w.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	w.log.Info(ctx, "draft saved", "name", name, "revision", d.Revision)
	return d, nil
}

// LoadDraft restores the state stored under name.
func (w *Workspace) LoadDraft(ctx context.Context, name string) error {
	if w.drafts == nil {
		return ErrNoDrafts
	}
	d, err := w.drafts.Get(ctx, name)
	if err != nil {
		return err
	}
	var snap Snapshot
	if err := json.Unmarshal(d.Payload, &snap); err != nil {
		return fmt.Errorf("decode draft %q: %w", name, err)
	}
	w.Restore(snap)
	w.log.Info(ctx, "draft loaded", "name", name, "revision", d.Revision)
	return nil
}

func (w *Workspace) ListDrafts(ctx context.Context) ([]drafts.Draft, error) {
	if w.drafts == nil {
		return nil, ErrNoDrafts
	}
	return w.drafts.List(ctx)
}

func (w *Workspace) DeleteDraft(ctx context.Context, name string) error {
	if w.drafts == nil {
		return ErrNoDrafts
	}
	return w.drafts.Delete(ctx, name)
}
