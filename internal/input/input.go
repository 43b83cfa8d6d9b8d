// Package input locates and reads puzzle input files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads day inputs from a directory laid out as day1.txt, day2.txt, ...
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir. A leading "~/" expands to the
// user's home directory.
func NewLoader(dir string) *Loader {
	return &Loader{Root: expandHome(dir)}
}

// Path returns the conventional input path for a day.
func (l *Loader) Path(day int) string {
	return filepath.Join(l.Root, fmt.Sprintf("day%d.txt", day))
}

// Load returns the raw text of a day's input, untouched.
func (l *Loader) Load(day int) (string, error) {
	path := l.Path(day)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input for day %d: %w", day, err)
	}
	return string(data), nil
}

// Available returns the days that have an input file, in the order given.
func (l *Loader) Available(days []int) []int {
	var out []int
	for _, d := range days {
		if info, err := os.Stat(l.Path(d)); err == nil && !info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
