package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/homier/hashtable"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

const helpText = `commands:
  insert <key> <value>
  search <key>
  delete <key>
  stats
  compact
  reset
  help`

// execute runs a single command line against the table and returns its output.
// Empty lines and lines starting with '#' produce no output.
func execute(t *hashtable.SyncTable, line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(cmd) {
	case "insert", "set":
		key, value, ok := strings.Cut(args, " ")
		if !ok || key == "" {
			return "", fmt.Errorf("%w: insert <key> <value>", errUsage)
		}

		if t.Insert(key, strings.TrimSpace(value)) {
			return "inserted", nil
		}
		return "updated", nil

	case "search", "get":
		if args == "" || strings.Contains(args, " ") {
			return "", fmt.Errorf("%w: search <key>", errUsage)
		}

		v, ok := t.Search(args)
		if !ok {
			return "(not found)", nil
		}
		return v, nil

	case "delete", "del":
		if args == "" || strings.Contains(args, " ") {
			return "", fmt.Errorf("%w: delete <key>", errUsage)
		}

		if t.Delete(args) {
			return "deleted", nil
		}
		return "(not found)", nil

	case "stats":
		s := t.Stats()
		return fmt.Sprintf(
			"size=%d capacity=%d base_size=%d tombstones=%d load=%d%% grows=%d shrinks=%d compactions=%d",
			s.Size, s.Capacity, s.BaseSize, s.Tombstones, s.LoadFactor, s.Grows, s.Shrinks, s.Compactions,
		), nil

	case "compact":
		t.Compact()
		return "compacted", nil

	case "reset":
		t.Reset()
		return "reset", nil

	case "help":
		return helpText, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownCommand, cmd)
}

// demoScript replays a small session that touches every operation.
var demoScript = []string{
	"insert farzin vatani",
	"insert me v2",
	"search farzin",
	"search me",
	"delete farzin",
	"search farzin",
	"search ali",
	"search me",
	"stats",
}

func runScript(t *hashtable.SyncTable, w io.Writer, lines []string) error {
	for _, line := range lines {
		out, err := execute(t, line)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}

		if _, err := fmt.Fprintf(w, "> %s\n%s\n", line, out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}
