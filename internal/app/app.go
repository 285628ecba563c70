// Package app initializes and orchestrates the main components of notegen.
// It wires together the configuration, the site generator, the Git source
// client and the preview server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/notegen/internal/config"
	"github.com/sevigo/notegen/internal/core"
	"github.com/sevigo/notegen/internal/discovery"
	"github.com/sevigo/notegen/internal/gitutil"
	"github.com/sevigo/notegen/internal/markdown"
	"github.com/sevigo/notegen/internal/server"
	"github.com/sevigo/notegen/internal/site"
)

// App holds the main application components.
type App struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	GitClient *gitutil.Client
	Converter *markdown.Converter
}

// BuildResult is a generation result together with the settings that shaped it.
type BuildResult struct {
	*site.Result
	SourceDir  string
	OutputDir  string
	SiteConfig *config.SiteConfig
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, gitClient *gitutil.Client, conv *markdown.Converter, logger *slog.Logger) *App {
	logger.Debug("initializing notegen",
		"source", cfg.SourceDir,
		"output", cfg.OutputDir,
		"tree_depth", cfg.TreeDepth,
		"style", conv.StyleName())
	return &App{
		Cfg:       cfg,
		Logger:    logger,
		GitClient: gitClient,
		Converter: conv,
	}
}

// ResolveSource returns the local directory holding the notes. When SourceRepo
// is set the repository is cloned or pulled first and SourceDir is taken
// relative to the checkout.
func (a *App) ResolveSource(ctx context.Context) (string, error) {
	if a.Cfg.SourceRepo == "" {
		return a.Cfg.SourceDir, nil
	}
	if !gitutil.IsRemote(a.Cfg.SourceRepo) {
		return "", fmt.Errorf("SOURCE_REPO is not a repository URL: %s", a.Cfg.SourceRepo)
	}
	checkout, err := a.GitClient.Sync(ctx, a.Cfg.SourceRepo, a.Cfg.RepoCacheDir)
	if err != nil {
		return "", fmt.Errorf("failed to sync source repository: %w", err)
	}
	if sha, err := a.GitClient.GetHeadSHA(checkout); err == nil {
		a.Logger.InfoContext(ctx, "using source repository", "url", a.Cfg.SourceRepo, "head", sha)
	}
	return joinSource(checkout, a.Cfg.SourceDir), nil
}

// LoadSiteConfig reads .notegen.yml from sourceDir, falling back to defaults.
func (a *App) LoadSiteConfig(sourceDir string) (*config.SiteConfig, error) {
	siteCfg, err := config.LoadSiteConfig(sourceDir)
	if errors.Is(err, config.ErrConfigNotFound) {
		a.Logger.Debug("no site config found, using defaults", "source", sourceDir)
		return siteCfg, nil
	}
	return siteCfg, err
}

// NewDiscoverer returns a discoverer configured from siteCfg.
func (a *App) NewDiscoverer(siteCfg *config.SiteConfig) (*discovery.Discoverer, error) {
	return discovery.New(discovery.Options{
		Exclude:     siteCfg.Exclude,
		SkipHidden:  siteCfg.SkipHidden,
		SortEntries: siteCfg.SortEntries,
	}, a.Logger)
}

// Discover builds the document tree of the configured source.
func (a *App) Discover(ctx context.Context) (*core.Folder, error) {
	sourceDir, err := a.ResolveSource(ctx)
	if err != nil {
		return nil, err
	}
	siteCfg, err := a.LoadSiteConfig(sourceDir)
	if err != nil {
		return nil, err
	}
	d, err := a.NewDiscoverer(siteCfg)
	if err != nil {
		return nil, err
	}
	return d.Discover(sourceDir)
}

// Build generates the whole site into the configured output directory.
func (a *App) Build(ctx context.Context) (*BuildResult, error) {
	sourceDir, err := a.ResolveSource(ctx)
	if err != nil {
		return nil, err
	}
	siteCfg, err := a.LoadSiteConfig(sourceDir)
	if err != nil {
		return nil, err
	}
	d, err := a.NewDiscoverer(siteCfg)
	if err != nil {
		return nil, err
	}

	gen := site.NewGenerator(d, site.NewFileBodyRenderer(a.Converter), a.Converter, site.Options{
		TreeDepth:       a.Cfg.TreeDepth,
		MediaDir:        a.Cfg.MediaDir,
		RequireMedia:    a.Cfg.MediaRequired,
		StrictFilenames: siteCfg.StrictFilenames,
		WriteStylesheet: siteCfg.WriteStylesheet,
	}, a.Logger)

	res, err := gen.Generate(ctx, sourceDir, a.Cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	return &BuildResult{
		Result:     res,
		SourceDir:  sourceDir,
		OutputDir:  a.Cfg.OutputDir,
		SiteConfig: siteCfg,
	}, nil
}

// Serve serves the output directory until ctx is cancelled or the process
// receives SIGINT or SIGTERM. landing is the page "/" redirects to.
func (a *App) Serve(ctx context.Context, landing string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(a.Cfg.ServerPort, a.Cfg.OutputDir, landing, a.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("received shutdown signal")
		return srv.Stop()
	})

	if err := g.Wait(); err != nil {
		a.Logger.Error("server stopped with errors", "error", err)
		return err
	}
	a.Logger.Info("server stopped successfully")
	return nil
}
