package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/config"
	"github.com/dmitrijs2005/forestadmin/internal/client/localdb"
	"github.com/dmitrijs2005/forestadmin/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/forestadmin/internal/client/services"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

// Setup wires an App from configuration: the HTTP client, the drafts
// database and the workspace. The returned close function releases the
// database.
func Setup(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, func() error, error) {
	log := logging.NewTextLogger(logOut, cfg.LogLevel)

	db, err := localdb.Open(ctx, cfg.DraftsDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open drafts database: %w", err)
	}

	bar := NewStdoutProgressBar()
	ws := services.NewWorkspace(services.Deps{
		Client:   api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, cfg.UploadTimeout),
		Log:      log,
		Policies: services.DefaultPolicies(cfg.ImageLimit, cfg.ImageMaxBytes, cfg.VideoMaxBytes),
		Progress: bar.Update,
		Parallel: cfg.Parallel,
	}, drafts.NewSQLiteRepository(db))

	log.Debug(ctx, "workspace ready", "api", cfg.APIBaseURL, "drafts", cfg.DraftsDSN)
	return NewApp(ws, in, out, log), db.Close, nil
}
