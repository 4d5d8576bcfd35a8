package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

// FacilityEditor edits one facility: its fields, image gallery and map.
type FacilityEditor struct {
	deps Deps
	orch *Orchestrator
	gate gate
	log  logging.Logger

	mu sync.Mutex
	f  *models.Facility
}

func NewFacilityEditor(d Deps, orch *Orchestrator, val *Validator) *FacilityEditor {
	return &FacilityEditor{
		deps: d,
		orch: orch,
		gate: gate{val: val, dialog: d.Dialog},
		log:  d.logger().With("editor", models.KindFacility),
		f:    models.NewFacility(d.Policies.ForestImages, d.Policies.ForestMap),
	}
}

// Record returns the facility being edited.
func (e *FacilityEditor) Record() *models.Facility {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.f
}

// New replaces the record with an empty, unsaved facility.
func (e *FacilityEditor) New() *models.Facility {
	f := models.NewFacility(e.deps.Policies.ForestImages, e.deps.Policies.ForestMap)
	e.mu.Lock()
	e.f = f
	e.mu.Unlock()
	return f
}

// Load replaces the record with the facility stored under forestSeqNo.
func (e *FacilityEditor) Load(ctx context.Context, forestSeqNo int) error {
	info, err := e.deps.Client.GetForestInfo(ctx, forestSeqNo)
	if err != nil {
		return fmt.Errorf("load facility %d: %w", forestSeqNo, err)
	}
	f := models.NewFacility(e.deps.Policies.ForestImages, e.deps.Policies.ForestMap)
	f.SeqNo = forestSeqNo
	f.Name = info.Name
	f.Addr1 = info.Addr1
	f.Addr2 = info.Addr2
	f.BusinessNum = info.BusinessNumber
	f.Desc = info.Descript
	f.SimpleDesc = info.SimpleDescript
	f.MainYn = info.MainYn
	f.TelNo = info.TelNo
	for _, img := range info.Images {
		f.Images.Hydrate(storedFile(img))
	}
	if info.MapImage != nil {
		f.Map.Hydrate(storedFile(*info.MapImage))
	}

	e.mu.Lock()
	e.f = f
	e.mu.Unlock()
	return nil
}

func (e *FacilityEditor) Apply(p models.FacilityPatch) {
	e.Record().Apply(p)
}

// Validate reports whether the required fields are filled, opening a
// notice when they are not.
func (e *FacilityEditor) Validate() bool {
	return e.gate.check(msgForestRequired, e.gate.val.Missing(e.Record()))
}

// Save runs the save sequence. Callers validate first.
func (e *FacilityEditor) Save(ctx context.Context, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	return e.orch.Save(ctx, facilityTarget{f: e.Record(), client: e.deps.Client}, onSuccess)
}

// ValidateAndSave is Validate followed by Save.
func (e *FacilityEditor) ValidateAndSave(ctx context.Context, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	if !e.Validate() {
		return SaveResult{}, ErrValidation
	}
	return e.Save(ctx, onSuccess)
}

// RequestDelete asks for confirmation and deletes the facility remotely.
func (e *FacilityEditor) RequestDelete(onDeleted func(ctx context.Context)) {
	e.deps.Dialog.Confirm(msgConfirmDelete, func(ctx context.Context) {
		if e.Delete(ctx) && onDeleted != nil {
			onDeleted(ctx)
		}
	})
}

// Delete removes the facility remotely and resets the editor. An unsaved
// facility is just reset.
func (e *FacilityEditor) Delete(ctx context.Context) bool {
	f := e.Record()
	if f.SeqNo != 0 {
		f.SetLoading(true)
		err := e.deps.Client.DeleteForest(ctx, f.SeqNo)
		f.SetLoading(false)
		if err != nil {
			e.log.Error(ctx, "facility delete failed", "id", f.SeqNo, "error", err)
			e.deps.Dialog.OpenWith(dialog.Settings{Body: failureBody(msgDeleteFailed, err), SecondClass: dialog.ClassHidden})
			return false
		}
		e.log.Info(ctx, "facility deleted", "id", f.SeqNo)
	}
	e.New()
	e.deps.Dialog.Notify(msgDeleted)
	return true
}

func storedFile(img api.ImageInfo) models.StoredFile {
	return models.StoredFile{URL: img.URL, Sort: img.Sort, ImageSeqNo: img.ImgSeqNo}
}
