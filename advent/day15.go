package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/vaughan0/go-ini"
)

func init() {
	register(15, func() solution { return &day15{turnsA: 2020, turnsB: 30000000} })
}

type day15 struct {
	turnsA, turnsB int
}

func (d *day15) configure(sec ini.Section) error {
	err := setParams(sec, map[string]param{
		"turnsA": intParam(&d.turnsA),
		"turnsB": intParam(&d.turnsB),
	})
	if err != nil {
		return err
	}
	for _, turns := range []int{d.turnsA, d.turnsB} {
		// Turn numbers are stored as int32.
		if turns < 1 || turns > math.MaxInt32 {
			return fmt.Errorf("turn counts must be between 1 and %d", math.MaxInt32)
		}
	}
	return nil
}

func parseStartingNumbers(input string) ([]int, error) {
	ls := lines(input)
	if len(ls) != 1 {
		return nil, malformed(0, "", "want a single line")
	}
	start, err := parseCommaInts(strings.TrimSpace(ls[0]))
	if err != nil {
		return nil, err
	}
	for _, n := range start {
		if n < 0 {
			return nil, malformed(1, ls[0], "negative starting number %d", n)
		}
	}
	return start, nil
}

func (d *day15) partA(input string) (any, error) { return answer(d.play(input, d.turnsA)) }

func (d *day15) partB(input string) (any, error) { return answer(d.play(input, d.turnsB)) }

func (d *day15) play(input string, turns int) (int, error) {
	start, err := parseStartingNumbers(input)
	if err != nil {
		return 0, err
	}
	return spokenOnTurn(start, turns), nil
}

// spokenOnTurn plays the elves' memory game: after the starting numbers,
// each turn's number is 0 if the previous number was new, and otherwise
// how many turns apart its last two utterances were.
func spokenOnTurn(start []int, turn int) int {
	if turn <= len(start) {
		return start[turn-1]
	}
	// Every number spoken after the start is an age, so less than turn.
	size := turn
	for _, n := range start {
		size = max(size, n+1)
	}
	// lastSpoken[n] is the last turn n was spoken, not counting the most
	// recent turn; 0 means never.
	lastSpoken := make([]int32, size)
	for i, n := range start[:len(start)-1] {
		lastSpoken[n] = int32(i + 1)
	}
	cur := start[len(start)-1]
	for t := len(start); t < turn; t++ {
		prev := lastSpoken[cur]
		lastSpoken[cur] = int32(t)
		if prev == 0 {
			cur = 0
		} else {
			cur = t - int(prev)
		}
	}
	return cur
}
