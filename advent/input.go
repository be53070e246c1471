package main

import (
	"strconv"
	"strings"
)

// lines splits input into lines with trailing whitespace removed.
// A final newline does not produce an empty last line.
func lines(input string) []string {
	input = strings.TrimRight(input, " \t\r\n")
	if input == "" {
		return nil
	}
	ls := strings.Split(input, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimRight(l, " \t\r")
	}
	return ls
}

// A numberedLine is a line together with its 1-based position in the input.
type numberedLine struct {
	n    int
	text string
}

// paragraphs splits input into groups of lines separated by blank lines.
func paragraphs(input string) [][]numberedLine {
	var groups [][]numberedLine
	var cur []numberedLine
	for i, l := range lines(input) {
		if l == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, numberedLine{i + 1, l})
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// parseInts parses input as one integer per line.
func parseInts(input string) ([]int, error) {
	var ns []int
	for i, l := range lines(input) {
		n, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, malformed(i+1, l, "not an integer")
		}
		ns = append(ns, n)
	}
	return ns, nil
}

// parseCommaInts parses a single comma-separated line of integers.
func parseCommaInts(line string) ([]int, error) {
	fields := strings.Split(line, ",")
	ns := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, malformed(0, line, "field %d (%q) is not an integer", i+1, f)
		}
		ns[i] = n
	}
	return ns, nil
}

// parseGrid parses a rectangular grid of characters, each of which must
// appear in allowed.
func parseGrid(input, allowed string) ([][]byte, error) {
	ls := lines(input)
	if len(ls) == 0 {
		return nil, malformed(0, "", "empty grid")
	}
	grid := make([][]byte, len(ls))
	for i, l := range ls {
		if len(l) != len(ls[0]) {
			return nil, malformed(i+1, l, "row has length %d; want %d", len(l), len(ls[0]))
		}
		if j := strings.IndexFunc(l, func(r rune) bool { return !strings.ContainsRune(allowed, r) }); j >= 0 {
			return nil, malformed(i+1, l, "unexpected %q at column %d", l[j], j+1)
		}
		grid[i] = []byte(l)
	}
	return grid, nil
}

// vec2 is a point or direction on the plane; y grows northward.
type vec2 struct {
	x, y int
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func (v vec2) scalarMul(n int) vec2 {
	return vec2{v.x * n, v.y * n}
}

// rotate turns v clockwise by quarter turns (negative is counterclockwise).
func (v vec2) rotate(quarters int) vec2 {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return vec2{v.y, -v.x}
	case 2:
		return vec2{-v.x, -v.y}
	case 3:
		return vec2{-v.y, v.x}
	}
	return v
}

func (v vec2) manhattan() int {
	return abs(v.x) + abs(v.y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
