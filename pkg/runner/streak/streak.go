package streak

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
)

// Streak prints the lifetime entry counter.
type Streak struct {
	App    *app.App
	Format printers.Format
	Out    io.Writer
}

func (n *Streak) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not read streak, no journal")
	}
	s := n.App.Journal.Streak()
	if n.Format != printers.FormatPretty {
		return printers.Encode(n.out(), n.Format, map[string]int{"streak": s})
	}
	pp := printers.PrettyPrint{Out: n.out()}
	pp.Streak(s)
	return nil
}

func (n *Streak) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
