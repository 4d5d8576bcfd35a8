package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/forestadmin/internal/flagx"
	"github.com/dmitrijs2005/forestadmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// keep the current value.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	UploadTimeout  *timex.Duration `json:"upload_timeout"`
	DraftsDSN      *string         `json:"drafts_dsn"`
	LogLevel       *string         `json:"log_level"`
	ImageLimit     *int            `json:"image_limit"`
	ImageMaxBytes  *int64          `json:"image_max_bytes"`
	VideoMaxBytes  *int64          `json:"video_max_bytes"`
	Parallel       *int            `json:"parallel"`
}

// parseJson overlays cfg with the JSON file named by -c/-config or
// $FORESTADMIN_CONFIG. No file requested means no change.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setDuration(&cfg.UploadTimeout, jc.UploadTimeout)
	setIf(&cfg.DraftsDSN, jc.DraftsDSN)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.ImageLimit, jc.ImageLimit)
	setIf(&cfg.ImageMaxBytes, jc.ImageMaxBytes)
	setIf(&cfg.VideoMaxBytes, jc.VideoMaxBytes)
	setIf(&cfg.Parallel, jc.Parallel)
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = time.Duration(v.Duration)
	}
}
