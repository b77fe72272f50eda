// Package app wires the site's services together and runs them.
package app

import (
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/zerohexer/cspnet/internal/analytics"
	"github.com/zerohexer/cspnet/internal/config"
	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/internal/pubsub"
	"github.com/zerohexer/cspnet/internal/rendering"
	"github.com/zerohexer/cspnet/internal/server"
	"github.com/zerohexer/cspnet/internal/site"
	"github.com/zerohexer/cspnet/internal/style"
)

// NewInjector registers every service provider. Services are built lazily on
// first invocation and shared afterwards.
func NewInjector(cfg *config.Config) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue[afero.Fs](i, afero.NewOsFs())
	do.Provide(i, provideContentStore)
	do.Provide(i, provideSheet)
	do.Provide(i, provideBus)
	do.Provide(i, provideCounter)
	do.Provide(i, provideSessions)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideServer)
	return i
}

func provideContentStore(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return content.NewStore(do.MustInvoke[afero.Fs](i), cfg.ContentPath)
}

func provideSheet(do.Injector) (*style.Sheet, error) {
	sheet := style.Default()
	slog.Debug("Style sheet built", "rules", sheet.Rules(), "etag", sheet.ETag())
	return sheet, nil
}

func provideBus(do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideCounter(do.Injector) (*analytics.Counter, error) {
	return analytics.NewCounter(), nil
}

// provideSessions builds each new App from the content snapshot current at
// the time the session starts.
func provideSessions(i do.Injector) (*site.Sessions, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store := do.MustInvoke[*content.Store](i)
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	return site.NewSessions(func(id string) *site.App {
		return site.NewApp(id, store.Site(), bus, slog.Default())
	}, site.WithLimit(cfg.SessionLimit)), nil
}

func provideRenderer(do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	s := server.New(server.Dependencies{
		Config:   do.MustInvoke[*config.Config](i),
		Sessions: do.MustInvoke[*site.Sessions](i),
		Sheet:    do.MustInvoke[*style.Sheet](i),
		Counter:  do.MustInvoke[*analytics.Counter](i),
		Renderer: do.MustInvoke[*rendering.UniversalRenderer](i),
	})
	s.RegisterRoutes()
	return s, nil
}
