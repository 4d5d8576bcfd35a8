package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

// ExpCodeSource lists the experiences a video row may point at.
type ExpCodeSource interface {
	ExpCodes() []models.ExpCode
}

// ExperienceList holds the experiences of one facility.
type ExperienceList struct {
	deps Deps
	orch *Orchestrator
	gate gate
	log  logging.Logger

	mu          sync.Mutex
	forestSeqNo int
	records     []*models.Experience
	depth1      []models.Code
	depth2      []models.Code
}

func NewExperienceList(d Deps, orch *Orchestrator, val *Validator) *ExperienceList {
	return &ExperienceList{
		deps: d,
		orch: orch,
		gate: gate{val: val, dialog: d.Dialog},
		log:  d.logger().With("list", models.KindExperience),
	}
}

func (l *ExperienceList) ForestSeqNo() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.forestSeqNo
}

// SetForest points the list, and every record in it, at a facility.
func (l *ExperienceList) SetForest(forestSeqNo int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.forestSeqNo = forestSeqNo
	for _, r := range l.records {
		r.ForestSeqNo = forestSeqNo
	}
}

// Load replaces the list with the experiences stored for the facility and
// refreshes the category codes.
func (l *ExperienceList) Load(ctx context.Context, forestSeqNo int) error {
	infos, err := l.deps.Client.GetExpList(ctx, forestSeqNo)
	if err != nil {
		return fmt.Errorf("load experiences of %d: %w", forestSeqNo, err)
	}
	l.Clear()
	l.SetForest(forestSeqNo)
	l.Hydrate(infos)
	return l.LoadCodes(ctx)
}

// LoadCodes fetches both category levels.
func (l *ExperienceList) LoadCodes(ctx context.Context) error {
	d1, err := l.deps.Client.GetCodeList(ctx, api.CodeGroupExpDepth1)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	d2, err := l.deps.Client.GetCodeList(ctx, api.CodeGroupExpDepth2)
	if err != nil {
		return fmt.Errorf("load sub categories: %w", err)
	}
	l.SetCodes(toCodes(d1), toCodes(d2))
	return nil
}

func (l *ExperienceList) SetCodes(depth1, depth2 []models.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.depth1, l.depth2 = depth1, depth2
}

func (l *ExperienceList) Depth1() []models.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Code(nil), l.depth1...)
}

// Depth2For returns the second-level codes under categ1.
func (l *ExperienceList) Depth2For(categ1 string) []models.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.Code
	for _, c := range l.depth2 {
		if strings.Contains(c.CD, categ1) {
			out = append(out, c)
		}
	}
	return out
}

// Hydrate appends records built from server data.
func (l *ExperienceList) Hydrate(infos []api.ExpInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, in := range infos {
		e := models.NewExperience(l.forestSeqNo, l.deps.Policies.ExpImages)
		e.SeqNo = in.ExpSeqNo
		e.Name = in.Name
		e.Categ1 = in.Categ1
		e.Categ2 = in.Categ2
		e.Title = in.Title
		e.Desc = in.Descript
		e.MainYn = in.MainYn
		for _, img := range in.Images {
			e.Images.Hydrate(storedFile(img))
		}
		l.records = append(l.records, e)
	}
}

// AddEmpty appends a blank experience. There is no cap.
func (l *ExperienceList) AddEmpty() *models.Experience {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := models.NewExperience(l.forestSeqNo, l.deps.Policies.ExpImages)
	l.records = append(l.records, e)
	return e
}

func (l *ExperienceList) Records() []*models.Experience {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*models.Experience(nil), l.records...)
}

func (l *ExperienceList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// At returns the n-th record (0-based).
func (l *ExperienceList) At(n int) (*models.Experience, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 || n >= len(l.records) {
		return nil, fmt.Errorf("%w: experience #%d", ErrRecordNotFound, n+1)
	}
	return l.records[n], nil
}

func (l *ExperienceList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

// Apply edits a record. When the category changes and the current sub
// category does not belong to it, the first matching sub category is
// selected.
func (l *ExperienceList) Apply(e *models.Experience, p models.ExperiencePatch) {
	before := e.Categ1
	e.Apply(p)
	if e.Categ1 == before {
		return
	}
	subs := l.Depth2For(e.Categ1)
	for _, c := range subs {
		if c.CD == e.Categ2 {
			return
		}
	}
	if len(subs) > 0 {
		e.Categ2 = subs[0].CD
	}
}

// ExpCodes lists the saved experiences, for video timestamp rows.
func (l *ExperienceList) ExpCodes() []models.ExpCode {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.ExpCode
	for _, r := range l.records {
		if r.SeqNo != 0 {
			out = append(out, models.ExpCode{ExpSeqNo: r.SeqNo, Name: r.Name})
		}
	}
	return out
}

func (l *ExperienceList) Validate(e *models.Experience) bool {
	return l.gate.check(msgExperienceRequired, l.gate.val.Missing(e))
}

func (l *ExperienceList) Save(ctx context.Context, e *models.Experience, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	if e.ForestSeqNo == 0 {
		e.ForestSeqNo = l.ForestSeqNo()
	}
	if e.ForestSeqNo == 0 {
		l.deps.Dialog.Notify(msgSaveFacilityFirst)
		return SaveResult{}, ErrNoFacility
	}
	return l.orch.Save(ctx, experienceTarget{e: e, client: l.deps.Client}, onSuccess)
}

func (l *ExperienceList) ValidateAndSave(ctx context.Context, e *models.Experience, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	if !l.Validate(e) {
		return SaveResult{}, ErrValidation
	}
	return l.Save(ctx, e, onSuccess)
}

// RequestRemove asks for confirmation before Remove.
func (l *ExperienceList) RequestRemove(e *models.Experience) {
	l.deps.Dialog.Confirm(msgConfirmDelete, func(ctx context.Context) {
		_ = l.Remove(ctx, e)
	})
}

// Remove deletes a saved record's files and the record remotely, then drops
// it from the list. Unsaved records are dropped without network calls. A
// failed remote delete keeps the record.
func (l *ExperienceList) Remove(ctx context.Context, e *models.Experience) error {
	if e.SeqNo != 0 {
		e.SetLoading(true)
		t := experienceTarget{e: e, client: l.deps.Client}
		if failed := l.orch.RemoveFiles(ctx, t); failed > 0 {
			l.log.Warn(ctx, "experience files not deleted", "id", e.SeqNo, "failed", failed)
		}
		err := l.deps.Client.DeleteExperience(ctx, e.SeqNo)
		e.SetLoading(false)
		if err != nil {
			l.log.Error(ctx, "experience delete failed", "id", e.SeqNo, "error", err)
			l.deps.Dialog.OpenWith(dialog.Settings{Body: failureBody(msgDeleteFailed, err), SecondClass: dialog.ClassHidden})
			return fmt.Errorf("%w: %w", ErrRemoveFailed, err)
		}
	}

	l.mu.Lock()
	l.records = without(l.records, e)
	l.mu.Unlock()

	l.deps.Dialog.Notify(msgDeleted)
	return nil
}

// Restore replaces the list from a snapshot.
func (l *ExperienceList) Restore(forestSeqNo int, snaps []models.ExperienceSnapshot) {
	recs := make([]*models.Experience, 0, len(snaps))
	for _, s := range snaps {
		recs = append(recs, models.RestoreExperience(s, l.deps.Policies.ExpImages))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.forestSeqNo = forestSeqNo
	l.records = recs
}

func (l *ExperienceList) Snapshot() []models.ExperienceSnapshot {
	recs := l.Records()
	out := make([]models.ExperienceSnapshot, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Snapshot())
	}
	return out
}

func toCodes(in []api.CodeInfo) []models.Code {
	out := make([]models.Code, 0, len(in))
	for _, c := range in {
		out = append(out, models.Code{CD: c.CD, Name: c.Name})
	}
	return out
}

func without[T comparable](list []T, item T) []T {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
