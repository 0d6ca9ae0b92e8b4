package position

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"termleap/board"
)

// Read loads a position file written by Write.
func Read(path string) (*board.Board, *Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	header, body := splitHeader(string(data))
	info, err := parseHeader(path, header)
	if err != nil {
		return nil, nil, err
	}

	b, err := board.Parse(body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", info.FileName, err)
	}
	if info.Size != 0 && info.Size != b.Size() {
		return nil, nil, fmt.Errorf("%s: header size %d does not match %d board rows", info.FileName, info.Size, b.Size())
	}
	info.Size = b.Size()
	return b, info, nil
}

// ReadHeader parses only the header of a position file.
func ReadHeader(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	header, _ := splitHeader(string(data))
	return parseHeader(path, header)
}

// splitHeader separates the "key: value" lines from the board rows.
// Files without a header are all board.
func splitHeader(content string) (string, string) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	first := strings.TrimSpace(strings.SplitN(strings.TrimSpace(content), "\n", 2)[0])
	if !strings.Contains(first, ":") {
		return "", content
	}
	if idx := strings.Index(content, "\n\n"); idx != -1 {
		return content[:idx], content[idx+2:]
	}
	return "", content
}

func parseHeader(path, header string) (*Info, error) {
	info := &Info{
		FilePath: path,
		FileName: filepath.Base(path),
	}
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%s: malformed header line %q", info.FileName, line)
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "size":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid size %q", info.FileName, value)
			}
			info.Size = n
		case "saved":
			info.Saved = value
		case "session":
			info.Session = value
		}
	}
	return info, nil
}

// ListPositions returns the headers of all position files in dir, newest first.
func ListPositions(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read positions dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var positions []Info
	for _, name := range names {
		info, err := ReadHeader(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		positions = append(positions, *info)
	}
	return positions, nil
}
