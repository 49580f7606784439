package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

// Delete moves the given files to the platform trash and reports the
// outcome per file. A path that cannot be trashed does not abort the
// rest of the batch.
func (c *CLI) Delete(args []string) error {
	if len(args) == 0 {
		return errors.New("too few arguments: specify files to delete")
	}

	paths := lo.Map(args, func(arg string, _ int) string {
		if abs, err := filepath.Abs(arg); err == nil {
			return abs
		}
		return arg
	})

	result := c.app.DeleteToTrash(paths)

	for _, entry := range result.Trashed {
		if c.config.Core.Undo.Verbose {
			color.Green("trashed: %s", entry.Name)
		}
	}
	for _, failed := range result.Failed {
		color.Red("failed: %s: %v", failed.Path, failed.Err)
	}

	if len(result.Trashed) > 0 {
		fmt.Printf("%d file(s) moved to trash\n", len(result.Trashed))
		if c.option.Interactive {
			hint("type \"undo\" to bring them back")
		}
	}
	if len(result.Failed) > 0 && len(result.Trashed) == 0 {
		return fmt.Errorf("no files could be moved to trash (%d failed)", len(result.Failed))
	}
	return nil
}
