package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindSum(t *testing.T) {
	entries := []int{1721, 979, 366, 299, 675, 1456}
	for _, tt := range []struct {
		k, target int
		want      []int
	}{
		{2, 2020, []int{1721, 299}},
		{3, 2020, []int{979, 366, 675}},
		{1, 366, []int{366}},
		{2, 4, nil},
		// The same entry can't be used twice.
		{2, 1958, nil},
	} {
		got, ok := findSum(entries, tt.k, tt.target)
		if ok != (tt.want != nil) {
			t.Errorf("findSum(k=%d, target=%d): got ok=%t", tt.k, tt.target, ok)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("findSum(k=%d, target=%d) (-want +got):\n%s", tt.k, tt.target, diff)
		}
	}
}

func TestFindSumNegative(t *testing.T) {
	got, ok := findSum([]int{5, -3, 10, 4}, 2, 1)
	if !ok {
		t.Fatal("no sum found")
	}
	if diff := cmp.Diff([]int{-3, 4}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDay1NoSolution(t *testing.T) {
	d := &day1{target: 2020}
	if _, err := d.partA("1\n2\n3\n"); !errors.Is(err, errNoSolution) {
		t.Errorf("got error %v; want no solution", err)
	}
	if _, err := d.partA("1\nabc\n"); !errors.Is(err, errMalformedInput) {
		t.Errorf("got error %v; want malformed input", err)
	}
}
