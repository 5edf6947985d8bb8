package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/backend"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/form"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

var (
	// ErrMissingCredential means no login code reached the form.
	ErrMissingCredential = errors.New("missing login code")
	// ErrSettingsFetch means the identity/settings exchange failed.
	ErrSettingsFetch = errors.New("settings fetch failed")
)

// BootError is a terminal startup failure. Kind is one of the sentinel
// errors above.
type BootError struct {
	Kind error
	Err  error
}

func (e *BootError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *BootError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// UserMessage is the text shown in place of the form.
func (e *BootError) UserMessage() string {
	switch {
	case errors.Is(e.Kind, ErrMissingCredential):
		return "Error: login information was not found. Open the settings again from the LINE menu."
	default:
		return "Error: failed to load your user information. Please try again later."
	}
}

// RouteLoader fetches the reference route dataset.
type RouteLoader func(ctx context.Context) (routes.Index, error)

// Orchestrator sequences startup and save for one form session.
type Orchestrator struct {
	backend    backend.SettingsService
	loadRoutes RouteLoader
	loginCode  string
	log        *zap.Logger
}

// NewOrchestrator wires the collaborators. loginCode may be the raw code or
// the redirect URL carrying it.
func NewOrchestrator(svc backend.SettingsService, loader RouteLoader, loginCode string, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		backend:    svc,
		loadRoutes: loader,
		loginCode:  ParseLoginCode(loginCode),
		log:        logger,
	}
}

// Bootstrap authenticates, loads the reference routes and the prior settings,
// and materialises the form. The route load never fails the boot: an
// unavailable dataset leaves the index empty.
func (o *Orchestrator) Bootstrap(ctx context.Context) (*form.State, error) {
	if o.loginCode == "" {
		o.log.Error("no login code supplied")
		return nil, &BootError{Kind: ErrMissingCredential}
	}

	var (
		index    routes.Index
		settings form.Settings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ix, err := o.loadRoutes(gctx)
		if err != nil {
			o.log.Warn("reference routes unavailable, continuing with empty index", zap.Error(err))
		}
		index = ix
		return nil
	})
	g.Go(func() error {
		s, err := o.backend.Exchange(gctx, o.loginCode)
		if err != nil {
			return err
		}
		settings = s
		return nil
	})
	if err := g.Wait(); err != nil {
		o.log.Error("settings exchange failed", zap.Error(err))
		return nil, &BootError{Kind: ErrSettingsFetch, Err: err}
	}

	session, err := form.NewSession(settings.UserID)
	if err != nil {
		o.log.Error("settings exchange returned no identity")
		return nil, &BootError{Kind: ErrSettingsFetch, Err: err}
	}

	state := form.NewState(session, index, settings)
	o.log.Info("form ready",
		zap.String("line_user_id", session.UserID),
		zap.Int("reference_routes", index.Len()),
		zap.Int("saved_routes", len(settings.Routes)),
	)
	return state, nil
}

// Save submits a validated payload.
func (o *Orchestrator) Save(ctx context.Context, payload form.Payload) error {
	if err := o.backend.Save(ctx, payload); err != nil {
		o.log.Error("save failed", zap.String("line_user_id", payload.UserID), zap.Error(err))
		return fmt.Errorf("save settings: %w", err)
	}
	o.log.Info("settings saved",
		zap.String("line_user_id", payload.UserID),
		zap.Int("routes", len(payload.Routes)),
		zap.Strings("days", payload.NotificationDays),
	)
	return nil
}

// ParseLoginCode accepts either the bare code or a redirect URL (or query
// string) carrying it as the "code" parameter.
func ParseLoginCode(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") && !strings.HasPrefix(trimmed, "?") {
		return trimmed
	}
	query := trimmed
	if u, err := url.Parse(trimmed); err == nil && u.RawQuery != "" {
		query = u.RawQuery
	}
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(values.Get("code"))
}
