// Package routes holds the reference route dataset used for autocomplete and
// save-time validation.
//
// The dataset is a JSON array of {"line_name", "line_cd"} objects. Load reads
// it from a local file, an http(s) URL or an s3://bucket/key object and never
// forces the caller to abort: on failure it returns the empty Index, against
// which nothing matches, alongside the error for logging.
//
// Index is immutable after construction and safe to share.
package routes
