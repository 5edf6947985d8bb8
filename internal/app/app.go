package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/backend"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/config"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/logging"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/prefs"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/ui"
)

// Options configure a delayalert session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/delayalert/prefs.toml
	LoginCode  string // raw code or the redirect URL carrying ?code=
}

// Run boots the settings form until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := backend.NewClient(cfg.BackendEndpoint, backend.Options{
		Timeout: cfg.RequestTimeout,
		Logger:  logger.Named("backend"),
	})
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	orch := NewOrchestrator(client, routeLoader(cfg, logger), opts.LoginCode, logger.Named("app"))

	logger.Info("starting delayalert",
		zap.String("backend", cfg.BackendEndpoint),
		zap.String("routes_source", cfg.RoutesSource),
	)

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: orch,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}

func routeLoader(cfg config.Config, logger *zap.Logger) RouteLoader {
	loadOpts := routes.Options{
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		S3: routes.S3Options{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		},
	}
	return func(ctx context.Context) (routes.Index, error) {
		ix, err := routes.Load(ctx, cfg.RoutesSource, loadOpts)
		if err == nil {
			logger.Debug("reference routes loaded", zap.Int("count", ix.Len()))
		}
		return ix, err
	}
}
