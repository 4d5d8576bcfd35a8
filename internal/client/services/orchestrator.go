package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

// saveTarget adapts one record kind to the orchestrator.
type saveTarget interface {
	kind() models.Kind
	state() *models.SaveState
	sets() []*models.AttachmentSet
	id() int
	assign(id int)
	// persist serializes the record and calls its save endpoint. It
	// returns the id sent back by the server, or 0 when none was sent.
	persist(ctx context.Context) (int, error)
}

// SaveResult describes a completed save. A save whose persist call failed
// returns an error instead.
type SaveResult struct {
	ID             int
	UploadFailures int
	DeleteFailures int
}

// Orchestrator runs the save sequence of a record: upload new attachments,
// delete removed ones, then persist the record. Phases are strictly
// sequential; transfers inside a phase run concurrently.
type Orchestrator struct {
	transfer *Transfer
	dialog   *dialog.Dialog
	log      logging.Logger
	progress ProgressFunc
	parallel int
}

func NewOrchestrator(d Deps) *Orchestrator {
	return &Orchestrator{
		transfer: NewTransfer(d.Client, d.logger()),
		dialog:   d.Dialog,
		log:      d.logger(),
		progress: d.Progress,
		parallel: d.Parallel,
	}
}

// Save runs the sequence for t. Transfer failures do not stop it. On
// success the server id is written back, uploaded attachments become
// persisted and a dialog whose first button calls onSuccess is opened.
func (o *Orchestrator) Save(ctx context.Context, t saveTarget, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	st := t.state()
	st.BeginCycle()
	defer st.SetLoading(false)

	log := o.log.With("record", t.kind(), "id", t.id())
	var res SaveResult

	res.UploadFailures = o.uploadPhase(ctx, t, st)
	if res.UploadFailures > 0 {
		st.UploadFailed()
		log.Warn(ctx, "upload phase incomplete", "failed", res.UploadFailures)
	}

	res.DeleteFailures = o.deletePhase(ctx, t, st)
	if res.DeleteFailures > 0 {
		st.DeleteFailed()
		log.Warn(ctx, "delete phase incomplete", "failed", res.DeleteFailures)
	}

	id, err := t.persist(ctx)
	if err != nil {
		log.Error(ctx, "persist failed", "error", err)
		o.dialog.OpenWith(dialog.Settings{
			Body:        failureBody(msgSaveFailed, err),
			SecondClass: dialog.ClassHidden,
		})
		return SaveResult{}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	if id != 0 {
		t.assign(id)
	}
	res.ID = t.id()
	for _, s := range t.sets() {
		s.MarkPersisted()
	}
	log.Info(ctx, "saved", "assigned", res.ID)

	body := []string{msgSaved}
	if res.UploadFailures > 0 {
		body = append(body, msgUploadFailed)
	}
	if res.DeleteFailures > 0 {
		body = append(body, msgFileDeleteFailed)
	}
	savedID := res.ID
	o.dialog.OpenWith(dialog.Settings{
		Body:        strings.Join(body, "\n"),
		SecondClass: dialog.ClassHidden,
		OnFirst: func(ctx context.Context) {
			if onSuccess != nil {
				onSuccess(ctx, savedID)
			}
		},
	})
	return res, nil
}

func (o *Orchestrator) uploadPhase(ctx context.Context, t saveTarget, st *models.SaveState) int {
	var jobs []job
	for _, set := range t.sets() {
		set := set
		for _, a := range set.Unsent() {
			id := a.CorrelationID
			jobs = append(jobs, func(ctx context.Context) bool {
				return o.transfer.Upload(ctx, set, id, o.track(st))
			})
		}
	}
	return countFailed(gather(ctx, o.parallel, jobs))
}

func (o *Orchestrator) deletePhase(ctx context.Context, t saveTarget, st *models.SaveState) int {
	var jobs []job
	for _, set := range t.sets() {
		set := set
		for _, a := range set.Pending() {
			id := a.CorrelationID
			jobs = append(jobs, func(ctx context.Context) bool {
				return o.transfer.DeletePending(ctx, set, id, o.track(st))
			})
		}
	}
	return countFailed(gather(ctx, o.parallel, jobs))
}

// RemoveFiles queues every persisted attachment of t for deletion and runs
// the delete phase. It returns the number of failed deletions.
func (o *Orchestrator) RemoveFiles(ctx context.Context, t saveTarget) int {
	for _, set := range t.sets() {
		for _, a := range set.Active() {
			_ = set.Remove(a.CorrelationID)
		}
	}
	st := t.state()
	failed := o.deletePhase(ctx, t, st)
	if failed > 0 {
		st.DeleteFailed()
	}
	return failed
}

func (o *Orchestrator) track(st *models.SaveState) ProgressFunc {
	return func(percent int, correlationID, fileName string) {
		st.SetProgress(percent)
		if o.progress != nil {
			o.progress(percent, correlationID, fileName)
		}
	}
}

// failureBody appends the backend's message, if any, to a failure text.
func failureBody(msg string, err error) string {
	var rej *api.RejectedError
	if errors.As(err, &rej) && rej.Message != "" {
		return msg + "\n" + rej.Message
	}
	return msg
}
