package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var day9Sample = []int{
	35, 20, 15, 25, 47, 40, 62, 55, 65, 95,
	102, 117, 150, 182, 127, 219, 299, 277, 309, 576,
}

func TestFirstInvalid(t *testing.T) {
	got, err := firstInvalid(day9Sample, 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := 127; got != want {
		t.Errorf("got %d; want %d", got, want)
	}

	// A pair of equal numbers doesn't count.
	got, err = firstInvalid([]int{1, 2, 3, 3, 6}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := 6; got != want {
		t.Errorf("got %d; want %d", got, want)
	}

	if _, err := firstInvalid([]int{1, 2, 3, 5, 8}, 2); !errors.Is(err, errNoSolution) {
		t.Errorf("got error %v; want no solution", err)
	}
}

func TestContiguousSum(t *testing.T) {
	for _, tt := range []struct {
		nums   []int
		target int
		want   []int
	}{
		{day9Sample, 127, []int{15, 25, 47, 40}},
		{[]int{1, 2, 3}, 6, []int{1, 2, 3}},
		{[]int{1, 2, 3}, 5, []int{2, 3}},
		// A single number is not a run.
		{[]int{1, 5, 9}, 5, nil},
	} {
		got, ok := contiguousSum(tt.nums, tt.target)
		if ok != (tt.want != nil) {
			t.Errorf("contiguousSum(%v, %d): got ok=%t", tt.nums, tt.target, ok)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("contiguousSum(%v, %d) (-want +got):\n%s", tt.nums, tt.target, diff)
		}
	}
}

func TestDay9Preamble(t *testing.T) {
	d := &day9{}
	if err := d.configure(map[string]string{"preamble": "1"}); err == nil {
		t.Error("preamble of 1 accepted")
	}
	if err := d.configure(map[string]string{"preamble": "5"}); err != nil {
		t.Fatal(err)
	}
	if d.preamble != 5 {
		t.Errorf("got preamble %d; want 5", d.preamble)
	}
}
