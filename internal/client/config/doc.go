// Package config loads runtime configuration for the forestadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or $FORESTADMIN_CONFIG.
//  3. Environment variables, optionally preloaded from a .env file
//     (path in $FORESTADMIN_ENV_FILE, default ".env").
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the backend API
//	-t duration   per-request timeout (uploads use their own timeout)
//	-d string     DSN of the local drafts database
//	-l string     log level: debug, info, warn or error
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "api_url": "https://admin.example/api",
//	  "request_timeout": "30s",
//	  "upload_timeout": "10m",
//	  "drafts_dsn": "drafts.db",
//	  "log_level": "info",
//	  "image_limit": 6,
//	  "image_max_bytes": 10485760,
//	  "video_max_bytes": 104857600,
//	  "parallel": 4
//	}
//
// # Environment
//
//	API_URL, REQUEST_TIMEOUT, UPLOAD_TIMEOUT, DRAFTS_DSN, LOG_LEVEL,
//	IMAGE_LIMIT, IMAGE_MAX_BYTES, VIDEO_MAX_BYTES, PARALLEL
package config
