package position

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"termleap/board"
	"termleap/types"
)

const testPosition = `size: 5
saved: 2026-01-15
session: 0b6f6a4e-3c1d-4b8e-9d55-2f0c1f7f8a10

. . . B B
. . . B B
. . A . .
A A . . .
A A . . .
`

func writeTempPosition(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp position: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := writeTempPosition(t, dir, "test.pos", testPosition)

	b, info, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.Size != 5 || b.Size() != 5 {
		t.Fatalf("size = %d/%d, want 5", info.Size, b.Size())
	}
	if info.Saved != "2026-01-15" {
		t.Errorf("Saved = %q", info.Saved)
	}
	if info.Session != "0b6f6a4e-3c1d-4b8e-9d55-2f0c1f7f8a10" {
		t.Errorf("Session = %q", info.Session)
	}
	if info.FileName != "test.pos" {
		t.Errorf("FileName = %q", info.FileName)
	}

	checks := []struct {
		x, y int
		want types.Occupancy
	}{
		{0, 0, types.PlayerA},
		{1, 1, types.PlayerA},
		{2, 2, types.PlayerA},
		{3, 4, types.PlayerB},
		{4, 3, types.PlayerB},
		{2, 0, types.Empty},
	}
	for _, c := range checks {
		got, err := b.At(c.x, c.y)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestReadWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeTempPosition(t, dir, "bare.pos", "B .\n. A\n")
	b, info, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.Size != 2 {
		t.Fatalf("Size = %d, want 2", info.Size)
	}
	if o, _ := b.At(1, 0); o != types.PlayerA {
		t.Fatalf("(1, 0) = %v, want A", o)
	}
	if o, _ := b.At(0, 1); o != types.PlayerB {
		t.Fatalf("(0, 1) = %v, want B", o)
	}
}

func TestReadSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeTempPosition(t, dir, "bad.pos", "size: 9\n\n. .\n. .\n")
	if _, _, err := Read(path); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, _, err := Read("/nonexistent/file.pos"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	b, err := board.New(9)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Relocate(3, 3, 4, 3); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "nested", NewFileName(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), 9))
	if err := Write(path, b, Info{Saved: "2026-03-01", Session: "abc"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, info, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.String() != b.String() {
		t.Fatalf("board mismatch:\n%s\nwant:\n%s", got, b)
	}
	if info.Session != "abc" || info.Saved != "2026-03-01" {
		t.Fatalf("info = %+v", info)
	}
	if info.FileName != "2026-03-01_123000_9x9.pos" {
		t.Fatalf("FileName = %q", info.FileName)
	}
}

func TestListPositions(t *testing.T) {
	dir := t.TempDir()
	writeTempPosition(t, dir, "2026-01-01_100000_5x5.pos", testPosition)
	writeTempPosition(t, dir, "2026-02-01_100000_5x5.pos", testPosition)
	writeTempPosition(t, dir, "notes.txt", "ignored")

	positions, err := ListPositions(dir)
	if err != nil {
		t.Fatalf("ListPositions: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(positions))
	}
	if positions[0].FileName != "2026-02-01_100000_5x5.pos" {
		t.Fatalf("newest first: got %q", positions[0].FileName)
	}
}

func TestListPositionsMissingDir(t *testing.T) {
	positions, err := ListPositions(filepath.Join(t.TempDir(), "missing"))
	if err != nil || positions != nil {
		t.Fatalf("ListPositions = %v, %v; want nil, nil", positions, err)
	}
}
