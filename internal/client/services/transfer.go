package services

import (
	"context"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

// Transfer moves single attachments to and from the backend. Every failure
// is logged and reported as false; nothing is retried.
type Transfer struct {
	client api.Client
	log    logging.Logger
}

func NewTransfer(client api.Client, log logging.Logger) *Transfer {
	return &Transfer{client: client, log: log}
}

// Upload sends one local attachment and records its remote location in
// place.
func (t *Transfer) Upload(ctx context.Context, set *models.AttachmentSet, correlationID string, progress ProgressFunc) bool {
	a, ok := set.Find(correlationID)
	if !ok {
		t.log.Warn(ctx, "upload: attachment not found", "category", set.Category(), "correlation_id", correlationID)
		return false
	}
	name := a.Name

	r, size, err := a.Local.Open()
	if err != nil {
		t.log.Warn(ctx, "upload: open failed", "category", set.Category(), "correlation_id", correlationID, "file", name, "error", err)
		return false
	}
	defer r.Close()

	up, err := t.client.Upload(ctx, string(set.Category()), name, r, size, func(ev api.ProgressEvent) {
		if progress != nil {
			progress(ev.Percent, correlationID, name)
		}
	})
	if err != nil {
		t.log.Warn(ctx, "upload failed", "category", set.Category(), "correlation_id", correlationID, "file", name, "error", err)
		return false
	}

	if err := set.CompleteUpload(correlationID, up.URL, up.Name); err != nil {
		// removed by the user while in flight
		t.log.Warn(ctx, "upload: attachment gone", "category", set.Category(), "correlation_id", correlationID, "file", name)
		return false
	}
	t.log.Debug(ctx, "uploaded", "category", set.Category(), "correlation_id", correlationID, "file", up.Name)
	return true
}

// DeletePending removes one pending attachment remotely and, on success,
// from the pending list.
func (t *Transfer) DeletePending(ctx context.Context, set *models.AttachmentSet, correlationID string, progress ProgressFunc) bool {
	a, ok := set.FindPending(correlationID)
	if !ok {
		t.log.Warn(ctx, "delete: attachment not pending", "category", set.Category(), "correlation_id", correlationID)
		return false
	}
	name := a.RemoteName

	err := t.client.DeleteFile(ctx, string(set.Category()), name, func(ev api.ProgressEvent) {
		if progress != nil {
			progress(ev.Percent, correlationID, name)
		}
	})
	if err != nil {
		t.log.Warn(ctx, "file delete failed", "category", set.Category(), "correlation_id", correlationID, "file", name, "error", err)
		return false
	}

	_ = set.ConfirmDeleted(correlationID)
	t.log.Debug(ctx, "file deleted", "category", set.Category(), "correlation_id", correlationID, "file", name)
	return true
}
