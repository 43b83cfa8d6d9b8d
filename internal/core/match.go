package core

// CountWord counts every occurrence of word read in a straight line in any
// of the eight directions. Matching is byte-exact.
func CountWord(g *Grid, word string) int {
	if word == "" {
		return 0
	}
	count := 0
	for i, b := range g.data {
		if b != word[0] {
			continue
		}
		for _, d := range AllDirections {
			if string(g.Scan(i, d).Take(len(word))) == word {
				count++
			}
		}
	}
	return count
}

// CountCross counts cells holding center whose two diagonals both read the
// pair in either order, e.g. M-A-S or S-A-M across each diagonal.
func CountCross(g *Grid, center byte, pair [2]byte) int {
	count := 0
	for i, b := range g.data {
		if b != center {
			continue
		}
		if g.diagonalMatches(i, DirUpLeft, pair) && g.diagonalMatches(i, DirUpRight, pair) {
			count++
		}
	}
	return count
}

// diagonalMatches reports whether the neighbours of i along d and its
// opposite hold the pair in some order.
func (g *Grid) diagonalMatches(i int, d Direction, pair [2]byte) bool {
	x, ok := g.Neighbor(i, d)
	if !ok {
		return false
	}
	y, ok := g.Neighbor(i, d.Opposite())
	if !ok {
		return false
	}
	return (x == pair[0] && y == pair[1]) || (x == pair[1] && y == pair[0])
}
