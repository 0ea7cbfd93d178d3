package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/store"
)

// Info reports where the journal lives and what it holds.
type Info struct {
	App *app.App
	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("failed to open the journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	cfgFile := store.ConfigFileUsed()
	if cfgFile == "" {
		cfgFile = "(none)"
	}
	override := os.Getenv("GRATITUDE_CONFIG_PATH")
	if override == "" {
		override = "(not set)"
	}

	cfg := n.App.Config
	pp := printers.PrettyPrint{Out: out}
	pp.Title("Konfiguration")
	pp.Table([][2]string{
		{"GRATITUDE_CONFIG_PATH", override},
		{"config file", cfgFile},
		{"path", cfg.BasePath()},
		{"locale", cfg.Locale()},
		{"log file", cfg.LogFile()},
		{"debug", strconv.FormatBool(cfg.Debug())},
	})

	pp.Title("Journal")
	rows := [][2]string{
		{"entries", strconv.Itoa(n.App.Journal.Len())},
		{"streak", strconv.Itoa(n.App.Journal.Streak())},
		{"categories", strconv.Itoa(n.App.Catalog.Len())},
	}
	for _, k := range n.App.Persistence.Keys(ctx) {
		size := "?"
		if b, err := n.App.Persistence.Read(k); err == nil {
			size = fmt.Sprintf("%d bytes", len(b))
		}
		rows = append(rows, [2]string{"key " + k, size})
	}
	pp.Table(rows)
	return nil
}
