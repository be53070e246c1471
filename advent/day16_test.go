package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const day16Sample = `class: 0-1 or 4-19
row: 0-5 or 8-19
seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
`

func TestResolveFields(t *testing.T) {
	notes, err := parseTicketNotes(day16Sample)
	if err != nil {
		t.Fatal(err)
	}
	got, err := notes.resolveFields()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, rule := range got {
		names = append(names, notes.rules[rule].name)
	}
	if diff := cmp.Diff([]string{"row", "class", "seat"}, names); diff != "" {
		t.Errorf("field order (-want +got):\n%s", diff)
	}
}

func TestResolveFieldsAmbiguous(t *testing.T) {
	notes, err := parseTicketNotes(`a: 1-10 or 20-30
b: 1-10 or 20-30

your ticket:
1,2

nearby tickets:
3,4
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := notes.resolveFields(); !errors.Is(err, errNoSolution) {
		t.Errorf("got error %v; want no solution", err)
	}
}

func TestInvalidValues(t *testing.T) {
	notes, err := parseTicketNotes(`class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
`)
	if err != nil {
		t.Fatal(err)
	}
	var got [][]int
	for _, tk := range notes.nearby {
		got = append(got, notes.invalidValues(tk))
	}
	want := [][]int{nil, {4}, {55}, {12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("invalid values (-want +got):\n%s", diff)
	}
}

func TestParseTicketNotesMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"class: 1-3\n\nyour ticket:\n1\n",
		"class: 1-3\n\nyour ticket:\n1\n\nnearby:\n2\n",
		"class: 1-3\n\nyour ticket:\n1,2\n\nnearby tickets:\n2\n",
		"class: 3-1\n\nyour ticket:\n1\n\nnearby tickets:\n2\n",
		"class 1-3\n\nyour ticket:\n1\n\nnearby tickets:\n2\n",
		"class: 1-3\n\nyour ticket:\n\nnearby tickets:\n2\n",
	} {
		if _, err := parseTicketNotes(input); !errors.Is(err, errMalformedInput) {
			t.Errorf("parseTicketNotes(%q): got error %v; want malformed input", input, err)
		}
	}
}
