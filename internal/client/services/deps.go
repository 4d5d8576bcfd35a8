package services

import (
	"errors"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrPersistFailed     = errors.New("persist failed")
	ErrDuplicateCategory = errors.New("duplicate season")
	ErrRecordNotFound    = errors.New("record not found")
	ErrNoFacility        = errors.New("facility is not saved yet")
	ErrRemoveFailed      = errors.New("remove failed")
)

// ProgressFunc receives transfer progress of one attachment.
type ProgressFunc func(percent int, correlationID, fileName string)

// Policies are the admission rules of each attachment set.
type Policies struct {
	ForestImages models.Policy
	ForestMap    models.Policy
	ExpImages    models.Policy
	Video        models.Policy
}

// DefaultPolicies builds the stock policies: imageLimit images per gallery,
// one map image and one video.
func DefaultPolicies(imageLimit int, imageMaxBytes, videoMaxBytes int64) Policies {
	return Policies{
		ForestImages: models.Policy{Limit: imageLimit, MaxBytes: imageMaxBytes, Kind: models.MediaImage},
		ForestMap:    models.Policy{Limit: 1, MaxBytes: imageMaxBytes, Kind: models.MediaImage},
		ExpImages:    models.Policy{Limit: imageLimit, MaxBytes: imageMaxBytes, Kind: models.MediaImage},
		Video:        models.Policy{Limit: 1, MaxBytes: videoMaxBytes, Kind: models.MediaVideo},
	}
}

// Deps are the collaborators shared by every editor of a workspace.
type Deps struct {
	Client   api.Client
	Dialog   *dialog.Dialog
	Log      logging.Logger
	Policies Policies

	// Progress, when set, observes every transfer.
	Progress ProgressFunc

	// Parallel bounds concurrent transfers within one phase; 0 is unbounded.
	Parallel int
}

func (d Deps) logger() logging.Logger {
	if d.Log == nil {
		return logging.Discard()
	}
	return d.Log
}
