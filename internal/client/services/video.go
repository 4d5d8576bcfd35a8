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

// VideoList holds the videos of one facility, at most one per season.
type VideoList struct {
	deps  Deps
	orch  *Orchestrator
	gate  gate
	codes ExpCodeSource
	log   logging.Logger

	mu          sync.Mutex
	forestSeqNo int
	records     []*models.Video
}

func NewVideoList(d Deps, orch *Orchestrator, val *Validator, codes ExpCodeSource) *VideoList {
	return &VideoList{
		deps:  d,
		orch:  orch,
		gate:  gate{val: val, dialog: d.Dialog},
		codes: codes,
		log:   d.logger().With("list", models.KindVideo),
	}
}

func (l *VideoList) ForestSeqNo() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.forestSeqNo
}

func (l *VideoList) SetForest(forestSeqNo int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.forestSeqNo = forestSeqNo
	for _, r := range l.records {
		r.ForestSeqNo = forestSeqNo
	}
}

// Load replaces the list with the videos stored for the facility.
func (l *VideoList) Load(ctx context.Context, forestSeqNo int) error {
	infos, err := l.deps.Client.GetMovieList(ctx, forestSeqNo)
	if err != nil {
		return fmt.Errorf("load videos of %d: %w", forestSeqNo, err)
	}
	l.Clear()
	l.SetForest(forestSeqNo)
	l.Hydrate(infos)
	return nil
}

// Hydrate appends records built from server data. Each stored video becomes
// one persisted attachment; a video without rows gets one blank row.
func (l *VideoList) Hydrate(infos []api.MovieInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, in := range infos {
		v := models.NewVideo(l.forestSeqNo, in.Categ1, l.deps.Policies.Video)
		v.SeqNo = in.MovieSeqNo
		if in.URL != "" {
			v.File.Hydrate(models.StoredFile{URL: in.URL, Sort: 1, ImageSeqNo: 1})
		}
		rows := make([]models.TimestampRow, 0, len(in.Details))
		for _, d := range in.Details {
			rows = append(rows, models.TimestampRow{ExpSeqNo: d.ExpSeqNo, PointTime: d.PointTime, Sort: d.Sort})
		}
		if len(rows) == 0 {
			rows = append(rows, models.TimestampRow{Sort: 1})
		}
		v.SetRows(rows)
		l.records = append(l.records, v)
	}
}

// AddEmpty appends a video tagged with the first unused season. When all
// seasons are taken it opens a notice and returns false.
func (l *VideoList) AddEmpty() (*models.Video, bool) {
	l.mu.Lock()
	season := ""
	for _, s := range models.Seasons {
		if !l.seasonUsedLocked(s, nil) {
			season = s
			break
		}
	}
	if season == "" {
		l.mu.Unlock()
		l.deps.Dialog.Notify(msgSeasonsExhausted)
		return nil, false
	}

	v := models.NewVideo(l.forestSeqNo, season, l.deps.Policies.Video)
	if codes := l.codes.ExpCodes(); len(codes) > 0 {
		v.SetRows([]models.TimestampRow{{ExpSeqNo: codes[0].ExpSeqNo, Sort: 1}})
	}
	l.records = append(l.records, v)
	l.mu.Unlock()
	return v, true
}

func (l *VideoList) seasonUsedLocked(season string, except *models.Video) bool {
	for _, r := range l.records {
		if r != except && r.Categ1 == season {
			return true
		}
	}
	return false
}

func (l *VideoList) Records() []*models.Video {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*models.Video(nil), l.records...)
}

func (l *VideoList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *VideoList) At(n int) (*models.Video, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 || n >= len(l.records) {
		return nil, fmt.Errorf("%w: video #%d", ErrRecordNotFound, n+1)
	}
	return l.records[n], nil
}

func (l *VideoList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

// AddRow appends a timestamp row to v, one per available experience at
// most. Over the cap a notice is opened and false returned.
func (l *VideoList) AddRow(v *models.Video) bool {
	if err := v.AddRow(len(l.codes.ExpCodes())); err != nil {
		l.deps.Dialog.Notify(msgRowsExhausted)
		return false
	}
	return true
}

// Validate requires a season and a video file.
func (l *VideoList) Validate(v *models.Video) bool {
	missing := l.gate.val.Missing(v)
	if v.File.Len() == 0 {
		missing = append(missing, "video file")
	}
	return l.gate.check(msgVideoRequired, missing)
}

// Save rejects a season already used by another video of the list, then
// runs the save sequence.
func (l *VideoList) Save(ctx context.Context, v *models.Video, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	l.mu.Lock()
	dup := l.seasonUsedLocked(v.Categ1, v)
	if v.ForestSeqNo == 0 {
		v.ForestSeqNo = l.forestSeqNo
	}
	l.mu.Unlock()
	if v.ForestSeqNo == 0 {
		l.deps.Dialog.Notify(msgSaveFacilityFirst)
		return SaveResult{}, ErrNoFacility
	}
	if dup {
		l.deps.Dialog.Notify(msgDuplicateSeason)
		return SaveResult{}, fmt.Errorf("%w: %s", ErrDuplicateCategory, v.Categ1)
	}
	return l.orch.Save(ctx, videoTarget{v: v, client: l.deps.Client}, onSuccess)
}

func (l *VideoList) ValidateAndSave(ctx context.Context, v *models.Video, onSuccess func(ctx context.Context, id int)) (SaveResult, error) {
	if !l.Validate(v) {
		return SaveResult{}, ErrValidation
	}
	return l.Save(ctx, v, onSuccess)
}

func (l *VideoList) RequestRemove(v *models.Video) {
	l.deps.Dialog.Confirm(msgConfirmDelete, func(ctx context.Context) {
		_ = l.Remove(ctx, v)
	})
}

// Remove deletes a saved video's file and record remotely, then drops it
// from the list. A failed remote delete keeps the record.
func (l *VideoList) Remove(ctx context.Context, v *models.Video) error {
	if v.SeqNo != 0 {
		v.SetLoading(true)
		t := videoTarget{v: v, client: l.deps.Client}
		if failed := l.orch.RemoveFiles(ctx, t); failed > 0 {
			l.log.Warn(ctx, "video file not deleted", "id", v.SeqNo, "failed", failed)
		}
		err := l.deps.Client.DeleteMovie(ctx, v.SeqNo)
		v.SetLoading(false)
		if err != nil {
			l.log.Error(ctx, "video delete failed", "id", v.SeqNo, "error", err)
			l.deps.Dialog.OpenWith(dialog.Settings{Body: failureBody(msgDeleteFailed, err), SecondClass: dialog.ClassHidden})
			return fmt.Errorf("%w: %w", ErrRemoveFailed, err)
		}
	}

	l.mu.Lock()
	l.records = without(l.records, v)
	l.mu.Unlock()

	l.deps.Dialog.Notify(msgDeleted)
	return nil
}

func (l *VideoList) Restore(forestSeqNo int, snaps []models.VideoSnapshot) {
	recs := make([]*models.Video, 0, len(snaps))
	for _, s := range snaps {
		recs = append(recs, models.RestoreVideo(s, l.deps.Policies.Video))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.forestSeqNo = forestSeqNo
	l.records = recs
}

func (l *VideoList) Snapshot() []models.VideoSnapshot {
	recs := l.Records()
	out := make([]models.VideoSnapshot, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Snapshot())
	}
	return out
}
