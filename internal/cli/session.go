package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/karasuno/snapsweep/internal/screenshot"
)

// Session runs the interactive loop. Deletes and undos share one
// process, so the undo stack survives between commands.
func (c *CLI) Session() error {
	fmt.Printf("%s %s - interactive session (type \"help\" for commands)\n",
		c.version.AppName, c.version.Version)

	// listed backs numeric selection; refreshed on every "list".
	var listed []screenshot.Entry

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", c.version.AppName)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		var err error
		switch cmd {
		case "list", "ls":
			listed, err = c.List()

		case "delete", "rm":
			var paths []string
			paths, err = resolveTargets(args, listed)
			if err == nil {
				err = c.Delete(paths)
			}

		case "undo", "u":
			count := 0
			if len(args) > 0 {
				count, err = strconv.Atoi(args[0])
				if err != nil {
					err = fmt.Errorf("undo takes a number, got %q", args[0])
					break
				}
			}
			err = c.Undo(count)

		case "reveal":
			var paths []string
			paths, err = resolveTargets(args, listed)
			if err == nil {
				for _, path := range paths {
					fmt.Println(revealCommand(path))
				}
			}

		case "status":
			batches, entries := c.app.PendingUndo()
			fmt.Printf("%d undoable batch(es), %d file(s)\n", batches, entries)

		case "help", "h":
			fmt.Print(sessionHelp)

		case "quit", "q", "exit":
			return nil

		default:
			err = fmt.Errorf("unknown command %q (type \"help\")", cmd)
		}

		if err != nil {
			color.Red("%v", err)
		}
	}
}

var sessionHelp = heredoc.Doc(`
	commands:
	  list                 scan the screenshots directory
	  delete <n|n-m|all>   trash by list number, range, or path
	  undo [n]             restore the last batch, or the last n files
	  reveal <n|path>      print the file-manager command for a file
	  status               show what can still be undone
	  quit                 leave the session
`)

// resolveTargets turns delete arguments into absolute paths. Numbers
// and ranges index the last listing (1-based); anything else is taken
// as a literal path.
func resolveTargets(args []string, listed []screenshot.Entry) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("delete needs list numbers or paths")
	}

	var paths []string
	for _, arg := range args {
		if arg == "all" {
			if len(listed) == 0 {
				return nil, fmt.Errorf("nothing listed yet: run \"list\" first")
			}
			for _, entry := range listed {
				paths = append(paths, entry.Path)
			}
			continue
		}

		indices, ok := parseSelection(arg)
		if !ok {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, abs)
			continue
		}

		for _, i := range indices {
			if i < 1 || i > len(listed) {
				return nil, fmt.Errorf("no entry %d in the last listing (%d entries)", i, len(listed))
			}
			paths = append(paths, listed[i-1].Path)
		}
	}
	return paths, nil
}

// parseSelection parses "3" or "2-5" into list indices. Returns false
// when the argument is not numeric.
func parseSelection(arg string) ([]int, bool) {
	lo, hi, found := strings.Cut(arg, "-")
	start, err := strconv.Atoi(lo)
	if err != nil {
		return nil, false
	}
	if !found {
		return []int{start}, true
	}

	end, err := strconv.Atoi(hi)
	if err != nil || end < start {
		return nil, false
	}
	indices := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		indices = append(indices, i)
	}
	return indices, true
}
