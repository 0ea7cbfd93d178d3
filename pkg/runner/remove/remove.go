package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/form"
)

// ErrNeedsConfirmation is returned when no prompt can be shown and the
// deletion was not pre-confirmed.
var ErrNeedsConfirmation = errors.New("deleting requires confirmation, pass --yes")

// Remove deletes an entry after confirmation.
type Remove struct {
	App *app.App
	ID  int64
	// Yes skips the prompt.
	Yes bool
	// Confirmer asks the question; nil without Yes is an error.
	Confirmer form.Confirmer

	Out io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not delete, no journal")
	}

	var confirm form.Confirmer
	if !n.Yes {
		if n.Confirmer == nil {
			return ErrNeedsConfirmation
		}
		confirm = n.Confirmer
	}

	deleted, err := n.App.Form.Delete(n.ID, confirm)
	if err != nil {
		return err
	}
	if !deleted {
		n.App.Logger.Debug("delete declined", "id", n.ID)
		n.printf("Nichts gelöscht.\n")
		return nil
	}
	n.App.Logger.Info("entry deleted", "id", n.ID)
	n.printf("Eintrag %d gelöscht.\n", n.ID)
	return nil
}

func (n *Remove) printf(format string, args ...any) {
	if n.Out != nil {
		_, _ = fmt.Fprintf(n.Out, format, args...)
	}
}

// TerminalConfirmer asks with a y/N prompt on the given streams.
type TerminalConfirmer struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (t TerminalConfirmer) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
