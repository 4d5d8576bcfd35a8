package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

// NoticeEditor edits one board post.
type NoticeEditor struct {
	deps Deps
	orch *Orchestrator
	gate gate
	log  logging.Logger

	mu sync.Mutex
	n  *models.Notice
}

func NewNoticeEditor(d Deps, orch *Orchestrator, val *Validator) *NoticeEditor {
	return &NoticeEditor{
		deps: d,
		orch: orch,
		gate: gate{val: val, dialog: d.Dialog},
		log:  d.logger().With("editor", models.KindNotice),
		n:    models.NewNotice(),
	}
}

func (e *NoticeEditor) Record() *models.Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.n
}

func (e *NoticeEditor) New() *models.Notice {
	n := models.NewNotice()
	e.mu.Lock()
	e.n = n
	e.mu.Unlock()
	return n
}

func (e *NoticeEditor) Load(ctx context.Context, boardSeqNo int) error {
	info, err := e.deps.Client.GetBoardDetail(ctx, boardSeqNo)
	if err != nil {
		return fmt.Errorf("load notice %d: %w", boardSeqNo, err)
	}
	n := models.NewNotice()
	n.SeqNo = boardSeqNo
	n.Title = info.Title
	n.Contents = info.Contents
	n.URL1, n.URL2, n.URL3 = info.URL1, info.URL2, info.URL3
	if info.UseYn != "" {
		n.UseYn = info.UseYn
	}

	e.mu.Lock()
	e.n = n
	e.mu.Unlock()
	return nil
}

func (e *NoticeEditor) Apply(p models.NoticePatch) {
	e.Record().Apply(p)
}

func (e *NoticeEditor) Validate() bool {
	return e.gate.check(msgNoticeRequired, e.gate.val.Missing(e.Record()))
}

func (e *NoticeEditor) Save(ctx context.Context, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	return e.orch.Save(ctx, noticeTarget{n: e.Record(), client: e.deps.Client}, onSuccess)
}

func (e *NoticeEditor) ValidateAndSave(ctx context.Context, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	if !e.Validate() {
		return SaveResult{}, ErrValidation
	}
	return e.Save(ctx, onSuccess)
}

func (e *NoticeEditor) RequestDelete() {
	e.deps.Dialog.Confirm(msgConfirmDelete, func(ctx context.Context) {
		e.Delete(ctx)
	})
}

// Delete removes the notice remotely and resets the editor.
func (e *NoticeEditor) Delete(ctx context.Context) bool {
	n := e.Record()
	if n.SeqNo != 0 {
		n.SetLoading(true)
		err := e.deps.Client.DeleteBoard(ctx, n.SeqNo)
		n.SetLoading(false)
		if err != nil {
			e.log.Error(ctx, "notice delete failed", "id", n.SeqNo, "error", err)
			e.deps.Dialog.OpenWith(dialog.Settings{Body: failureBody(msgDeleteFailed, err), SecondClass: dialog.ClassHidden})
			return false
		}
		e.log.Info(ctx, "notice deleted", "id", n.SeqNo)
	}
	e.New()
	e.deps.Dialog.Notify(msgDeleted)
	return true
}
