package main

import (
	"errors"
	"testing"
)

func TestTreesOnSlope(t *testing.T) {
	m := treeMap{
		[]byte("#.."),
		[]byte(".#."),
		[]byte("..#"),
		[]byte("#.."),
	}
	for _, tt := range []struct {
		slope vec2
		want  int
	}{
		{vec2{1, 1}, 4},
		{vec2{0, 1}, 2},
		{vec2{2, 1}, 2},
		{vec2{1, 2}, 1},
		{vec2{3, 1}, 2},
	} {
		if got := m.treesOnSlope(tt.slope); got != tt.want {
			t.Errorf("slope %v: got %d; want %d", tt.slope, got, tt.want)
		}
	}
}

func TestDay3Malformed(t *testing.T) {
	for _, input := range []string{
		"",
		"..#\n.#\n",
		"..#\n.X.\n",
	} {
		for _, part := range []func(string) (any, error){day3{}.partA, day3{}.partB} {
			if _, err := part(input); !errors.Is(err, errMalformedInput) {
				t.Errorf("%q: got error %v; want malformed input", input, err)
			}
		}
	}
}
