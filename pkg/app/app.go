// Package app wires configuration, persistence, the journal and the form
// controller together so the CLI and the TUI share one setup path.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/gratitude/pkg/category"
	"tableflip.dev/gratitude/pkg/form"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/logging"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/viewmodel"
)

// App is an opened journal ready for use.
type App struct {
	Config      store.Config
	Persistence store.Persistence
	Journal     *journal.Store
	Form        *form.Controller
	Catalog     *category.Catalog
	Logger      *log.Logger

	closer io.Closer
}

// Open loads configuration when cfg is nil, opens the store and reads the
// journal.
func Open(cfg store.Config) (*App, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	logger, closer, err := logging.New(logging.Config{Debug: cfg.Debug(), File: cfg.LogFile()})
	if err != nil {
		return nil, fmt.Errorf("app: logger: %w", err)
	}

	p, err := store.Load(cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	j, err := journal.Open(p, journal.WithLogger(logger))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	return &App{
		Config:      cfg,
		Persistence: p,
		Journal:     j,
		Form:        form.New(j, cfg.Locale()),
		Catalog:     category.NewCatalog(cfg.Categories()...),
		Logger:      logger,
		closer:      closer,
	}, nil
}

// Reload rereads the journal from persistence and clears the form.
func (a *App) Reload() error {
	if a.Journal == nil {
		return errors.New("app: no journal configured")
	}
	if err := a.Journal.Load(); err != nil {
		return err
	}
	a.Form.Reset()
	return nil
}

// View builds the display model of the current journal.
func (a *App) View(opts ...viewmodel.Option) viewmodel.Journal {
	return viewmodel.Build(a.Journal.Entries(), a.Journal.Streak(), opts...)
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
