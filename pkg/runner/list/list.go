package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/timeutil"
	"tableflip.dev/gratitude/pkg/viewmodel"
)

// List prints the journal, most recent entry first.
type List struct {
	App *app.App

	ShowID   bool
	Format   printers.Format
	Since    string
	Category string
	Width    int
	// Watch reprints whenever the stored journal changes until ctx ends.
	Watch bool

	Out io.Writer
	Now func() time.Time
}

func (n *List) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list, no journal")
	}
	opts, err := n.options()
	if err != nil {
		return err
	}
	if err := n.print(opts); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.App.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !journal.Tracks(ev.Key) {
				continue
			}
			if err := n.App.Reload(); err != nil {
				n.App.Logger.Warn("reload after change failed", "err", err)
				continue
			}
			if n.Format == printers.FormatPretty {
				_, _ = fmt.Fprintln(n.out(), "―――")
			}
			if err := n.print(opts); err != nil {
				return err
			}
		}
	}
}

func (n *List) options() ([]viewmodel.Option, error) {
	var opts []viewmodel.Option
	if n.Since != "" {
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		since, err := timeutil.Since(n.Since, now())
		if err != nil {
			return nil, err
		}
		opts = append(opts, viewmodel.WithSince(since))
	}
	if n.Category != "" {
		name, err := n.App.Catalog.Parse(n.Category)
		if err != nil {
			// Filtering by a custom category that was stored with --allow-custom.
			name = n.Category
		}
		opts = append(opts, viewmodel.WithCategory(name))
	}
	return opts, nil
}

func (n *List) print(opts []viewmodel.Option) error {
	view := n.App.View(opts...)
	if n.Format != printers.FormatPretty {
		return printers.Encode(n.out(), n.Format, view)
	}
	pp := printers.PrettyPrint{Out: n.out(), ShowID: n.ShowID, Width: n.Width}
	pp.Journal(view)
	return nil
}

func (n *List) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
