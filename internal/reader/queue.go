package reader

import (
	"fmt"
	"os"
	"strings"
)

// MaxQueueCommands bounds how many orchestrator commands are kept.
const MaxQueueCommands = 50

// ReadQueue returns the last MaxQueueCommands lines of the queue file,
// newest first. Lines are opaque; a missing file is absent, an empty file
// is present with no commands.
func ReadQueue(path string) Result[[]string] {
	data, err := os.ReadFile(path)
	if err != nil {
		return Absent[[]string](fmt.Errorf("read queue %s: %w", path, err))
	}

	lines := splitTextLines(string(data))
	n := min(len(lines), MaxQueueCommands)
	out := make([]string, 0, n)
	for i := len(lines) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, lines[i])
	}
	return Present(out)
}

// splitTextLines splits s into lines, dropping the terminator of the final
// line and any trailing carriage returns.
func splitTextLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
