// Package parse holds the small text helpers shared by the puzzles.
// Every failure wraps core.ErrMalformedInput.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/advent/internal/core"
)

// Lines splits input into lines, dropping a trailing carriage return from
// each and discarding blank lines.
func Lines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Sections splits input at the first blank line.
func Sections(input string) (head, tail string) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	head, tail, _ = strings.Cut(input, "\n\n")
	return head, tail
}

// Int parses a base-10 integer token.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", core.ErrMalformedInput, s)
	}
	return n, nil
}

// Fields parses whitespace-separated integers.
func Fields(line string) ([]int, error) {
	return ints(strings.Fields(line))
}

// Split parses integers separated by sep.
func Split(line, sep string) ([]int, error) {
	return ints(strings.Split(line, sep))
}

func ints(tokens []string) ([]int, error) {
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := Int(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
