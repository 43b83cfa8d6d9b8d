package core

import "strings"

const wordSearchSample = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX`

const patrolSample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

// mustGrid builds a grid or fails the calling test via panic.
func mustGrid(text string) *Grid {
	g, err := NewGrid(text)
	if err != nil {
		panic(err)
	}
	return g
}

// rotateText turns a block of lines a quarter turn clockwise and returns it
// with a terminator after every row.
func rotateText(text string) string {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	h, w := len(rows), len(rows[0])
	var sb strings.Builder
	for x := 0; x < w; x++ {
		for y := h - 1; y >= 0; y-- {
			sb.WriteByte(rows[y][x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
