package main

import (
	"errors"
	"testing"
)

func TestParseNavActionsMalformed(t *testing.T) {
	for _, input := range []string{
		"F10\nR45\n",
		"L100",
		"F",
		"X10",
		"N-3",
		"Ften",
	} {
		if _, err := parseNavActions(input); !errors.Is(err, errMalformedInput) {
			t.Errorf("parseNavActions(%q): got error %v; want malformed input", input, err)
		}
	}
}

func TestFerryTurns(t *testing.T) {
	for _, tt := range []struct {
		action navAction
		want   vec2
	}{
		{navAction{'R', 90}, vec2{0, -1}},
		{navAction{'L', 270}, vec2{0, -1}},
		{navAction{'R', 180}, vec2{-1, 0}},
		{navAction{'L', 90}, vec2{0, 1}},
		{navAction{'R', 360}, vec2{1, 0}},
		{navAction{'L', 0}, vec2{1, 0}},
	} {
		f := ferry{dir: headings['E']}
		f.act(tt.action)
		if f.dir != tt.want {
			t.Errorf("%c%d: got heading %v; want %v", tt.action.kind, tt.action.n, f.dir, tt.want)
		}
	}
}

func TestWaypoint(t *testing.T) {
	f := ferry{dir: vec2{10, 1}, useWaypoint: true}
	for _, a := range []navAction{{'F', 10}, {'N', 3}, {'F', 7}, {'R', 90}, {'F', 11}} {
		f.act(a)
	}
	if want := (vec2{214, -72}); f.pos != want {
		t.Errorf("got position %v; want %v", f.pos, want)
	}
	if want := (vec2{4, -10}); f.dir != want {
		t.Errorf("got waypoint %v; want %v", f.dir, want)
	}
}
