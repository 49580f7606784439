package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"al.essio.dev/pkg/shellescape"
	"github.com/fatih/color"
	"github.com/karasuno/snapsweep/internal/app"
)

// Undo restores the count most recent trashed files; count <= 0 means
// the whole last batch. On failure the remaining trashed paths are
// reported so the user can recover them by hand.
func (c *CLI) Undo(count int) error {
	restored, err := c.app.UndoLastDelete(count)

	for _, r := range restored {
		if r.RestoredPath != r.Entry.OriginalPath {
			color.Yellow("restored: %s (as %s)", r.Entry.Name, filepath.Base(r.RestoredPath))
		} else if c.config.Core.Undo.Verbose {
			color.Green("restored: %s", r.Entry.Name)
		}
	}

	if err == nil {
		fmt.Printf("%d file(s) restored\n", len(restored))
		return nil
	}

	if errors.Is(err, app.ErrNothingToUndo) {
		fmt.Println("nothing to undo")
		return nil
	}

	var restoreErr *app.RestoreError
	if errors.As(err, &restoreErr) {
		color.Red("could not restore %s: %v", restoreErr.Entry.Name, restoreErr.Err)
		if restoreErr.PermissionDenied() {
			hint("permission was denied reading the trash; grant this app full disk access and retry")
		}
		hint("the file is still in the trash; reveal it with:\n  %s",
			revealCommand(restoreErr.Entry.TrashedPath))
		return err
	}
	return err
}

// revealCommand builds the shell command that opens the platform file
// manager with the given path selected.
func revealCommand(path string) string {
	switch runtime.GOOS {
	case "darwin":
		return "open -R " + shellescape.Quote(path)
	case "windows":
		return "explorer /select," + shellescape.Quote(path)
	default:
		return "xdg-open " + shellescape.Quote(filepath.Dir(path))
	}
}
