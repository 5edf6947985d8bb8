package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrEmptySource is returned when no dataset location is configured.
var ErrEmptySource = errors.New("routes source is empty")

const defaultFetchTimeout = 10 * time.Second

// Options tune how Load reaches remote datasets.
type Options struct {
	HTTPClient *http.Client
	S3         S3Options

	// s3 overrides the client built from S3. Tests only.
	s3 objectGetter
}

// Load reads the reference dataset from source, which may be a local path,
// an http(s) URL or an s3://bucket/key object. Any failure yields the empty
// index together with the error; callers are expected to log it and carry on.
func Load(ctx context.Context, source string, opts Options) (Index, error) {
	body, err := open(ctx, strings.TrimSpace(source), opts)
	if err != nil {
		return Index{}, err
	}
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	if err != nil {
		return Index{}, fmt.Errorf("read routes: %w", err)
	}
	return decode(data)
}

func open(ctx context.Context, source string, opts Options) (io.ReadCloser, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	u, err := url.Parse(source)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return openHTTP(ctx, u, opts.HTTPClient)
		case "s3":
			return openS3(ctx, u, opts)
		}
	}
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open routes: %w", err)
	}
	return file, nil
}

func openHTTP(ctx context.Context, u *url.URL, client *http.Client) (io.ReadCloser, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch routes: %s returned status %d", u.Redacted(), resp.StatusCode)
	}
	return resp.Body, nil
}

func decode(data []byte) (Index, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Index{}, fmt.Errorf("routes dataset is empty")
	}
	if trimmed[0] != '[' {
		return Index{}, fmt.Errorf("routes dataset is not a JSON array")
	}
	var raw []Route
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Index{}, fmt.Errorf("parse routes: %w", err)
	}
	kept := raw[:0]
	for _, r := range raw {
		if r.Name == "" {
			continue
		}
		kept = append(kept, r)
	}
	return NewIndex(kept), nil
}
