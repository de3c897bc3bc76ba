package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MaxLogLines is the line budget of the log panel.
const MaxLogLines = 500

type logFile struct {
	path    string
	name    string
	modTime time.Time
}

// ReadLatestLogs returns up to maxLines of the newest log content in dir.
// Files are ranked by modification time, newest first, and consumed from
// their last line backwards until the budget runs out. The result keeps
// chronological order: lines from older files come before lines from newer
// ones, and each file's lines stay in their original order.
func ReadLatestLogs(dir string, maxLines int) Result[[]string] {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Absent[[]string](fmt.Errorf("read log dir %s: %w", dir, err))
	}
	if maxLines <= 0 {
		return Present[[]string](nil)
	}

	files := make([]logFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, logFile{
			path:    filepath.Join(dir, entry.Name()),
			name:    entry.Name(),
			modTime: info.ModTime(),
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.After(files[j].modTime)
		}
		return files[i].name < files[j].name
	})

	// chunks[0] belongs to the newest file.
	var chunks [][]string
	remaining := maxLines
	for _, f := range files {
		if remaining == 0 {
			break
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			continue
		}
		lines := splitTextLines(strings.ToValidUTF8(string(data), "�"))
		if len(lines) > remaining {
			lines = lines[len(lines)-remaining:]
		}
		remaining -= len(lines)
		chunks = append(chunks, lines)
	}

	out := make([]string, 0, maxLines-remaining)
	for i := len(chunks) - 1; i >= 0; i-- {
		out = append(out, chunks[i]...)
	}
	return Present(out)
}
