package ui

import (
	"context"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/tui"
)

// UI runs the interactive form and entry list.
type UI struct {
	App *app.App
}

func (d *UI) Do(ctx context.Context) error {
	d.App.Logger.Debug("starting ui", "entries", d.App.Journal.Len())
	return tui.Run(ctx, d.App)
}
