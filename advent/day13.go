package main

import (
	"strconv"
	"strings"
)

func init() {
	register(13, func() solution { return day13{} })
}

type day13 struct{}

type bus struct {
	id     int
	offset int // position in the schedule
}

type busNotes struct {
	earliest int
	buses    []bus
}

func parseBusNotes(input string) (*busNotes, error) {
	ls := lines(input)
	if len(ls) != 2 {
		return nil, malformed(0, "", "want 2 lines, got %d", len(ls))
	}
	var notes busNotes
	var err error
	if notes.earliest, err = strconv.Atoi(ls[0]); err != nil {
		return nil, malformed(1, ls[0], "bad timestamp")
	}
	for i, f := range strings.Split(ls[1], ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil || id < 1 {
			return nil, malformed(2, ls[1], "bad bus id %q", f)
		}
		notes.buses = append(notes.buses, bus{id: id, offset: i})
	}
	if len(notes.buses) == 0 {
		return nil, malformed(2, ls[1], "no buses")
	}
	return &notes, nil
}

func (day13) dump(input string) (any, error) { return answer(parseBusNotes(input)) }

// partA multiplies the id of the first bus to leave at or after the
// earliest timestamp by the wait for it.
func (day13) partA(input string) (any, error) {
	notes, err := parseBusNotes(input)
	if err != nil {
		return nil, err
	}
	best, bestWait := 0, -1
	for _, b := range notes.buses {
		wait := (b.id - notes.earliest%b.id) % b.id
		if bestWait < 0 || wait < bestWait {
			best, bestWait = b.id, wait
		}
	}
	return best * bestWait, nil
}

// partB finds the earliest t at which every bus departs at t plus its
// offset. Buses are folded in one at a time: once t satisfies the buses
// so far, stepping by the lcm of their ids preserves that.
func (day13) partB(input string) (any, error) {
	notes, err := parseBusNotes(input)
	if err != nil {
		return nil, err
	}
	t, step := 0, 1
	for _, b := range notes.buses {
		found := false
		for k := 0; k < b.id; k++ {
			if (t+b.offset)%b.id == 0 {
				found = true
				break
			}
			t += step
		}
		if !found {
			return nil, noSolution("bus %d can never depart %d minutes after the others", b.id, b.offset)
		}
		step = lcm(step, b.id)
	}
	return t, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
