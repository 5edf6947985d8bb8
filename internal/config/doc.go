// Package config loads delayalert's TOML configuration.
//
// # Discovery
//
// Load reads the given path, or ~/.config/delayalert/config.toml when the
// path is empty. A missing file is not an error: defaults are returned so the
// form can start and report a clear problem later (for example, no backend
// endpoint). A file that exists but cannot be parsed is an error.
//
// # Fields
//
//	backend_endpoint = "https://xxxx.execute-api.ap-northeast-1.amazonaws.com/prod/user-settings"
//	routes_source = "~/.config/delayalert/routes.json"   # or https://..., s3://bucket/key
//	request_timeout_seconds = 10
//	log_file = "~/.local/state/delayalert/delayalert.log"
//	log_level = "info"
//	s3_region = "ap-northeast-1"
//	s3_endpoint = ""        # set for MinIO or another S3-compatible store
//	s3_path_style = false
//
// Every field is optional. Blank values fall back to defaults; paths get
// tilde expansion, URLs are kept as written.
package config
