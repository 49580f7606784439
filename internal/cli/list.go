package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/karasuno/snapsweep/internal/screenshot"
	"github.com/olekukonko/tablewriter"
)

// List scans the screenshots directory and prints the result as a
// table. The returned entries back the interactive session's numeric
// selection.
func (c *CLI) List() ([]screenshot.Entry, error) {
	entries, err := c.app.ListScreenshots(c.sortOptions())
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Printf("no screenshots found in %s\n", c.config.Core.ScreenshotsDir)
		return nil, nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Name", "Size", "Modified", "Created"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for i, entry := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			entry.Name,
			sizeCell(entry.Size),
			timeCell(entry.ModifiedAt),
			timeCell(entry.CreatedAt),
		})
	}
	table.Render()

	fmt.Printf("%d screenshot(s) in %s\n", len(entries), c.config.Core.ScreenshotsDir)
	return entries, nil
}

func sizeCell(size *int64) string {
	if size == nil {
		return "-"
	}
	return humanize.Bytes(uint64(*size))
}

func timeCell(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t)
}

// hint prints secondary guidance below command output.
func hint(format string, args ...any) {
	color.New(color.Faint).Printf(format+"\n", args...)
}
