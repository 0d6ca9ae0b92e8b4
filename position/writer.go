// Package position saves and loads board positions as small text files.
package position

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"termleap/board"
)

// Extension is the file suffix of saved positions.
const Extension = ".pos"

// Info holds the header of a position file.
type Info struct {
	FilePath string
	FileName string
	Size     int
	Saved    string
	Session  string
}

// NewFileName returns a file name for a position saved at now.
func NewFileName(now time.Time, size int) string {
	return fmt.Sprintf("%s_%dx%d%s", now.Format("2006-01-02_150405"), size, size, Extension)
}

// Write stores b at path, creating the parent directory if needed.
// The file is a header of "key: value" lines, a blank line and the board
// as printed by Board.String.
func Write(path string, b *board.Board, info Info) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create positions dir: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("size: %d\n", b.Size()))
	if info.Saved != "" {
		sb.WriteString(fmt.Sprintf("saved: %s\n", info.Saved))
	}
	if info.Session != "" {
		sb.WriteString(fmt.Sprintf("session: %s\n", info.Session))
	}
	sb.WriteString("\n")
	sb.WriteString(b.String())

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write position: %w", err)
	}
	return nil
}
