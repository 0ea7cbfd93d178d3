package categories

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
)

// Categories lists the configured catalog.
type Categories struct {
	App    *app.App
	Format printers.Format
	Out    io.Writer
}

func (n *Categories) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list categories, no journal")
	}
	names := n.App.Catalog.Names()
	if n.Format != printers.FormatPretty {
		return printers.Encode(n.out(), n.Format, names)
	}
	pp := printers.PrettyPrint{Out: n.out()}
	pp.Categories(names)
	return nil
}

func (n *Categories) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
