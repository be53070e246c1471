package main

import (
	"errors"
)

func init() {
	register(5, func() solution { return day5{} })
}

type day5 struct{}

const numSeats = 128 * 8

// seatID decodes a boarding pass. The pass is a 10-bit binary number:
// seven row bits (F=0, B=1) followed by three column bits (L=0, R=1),
// so the result is row*8 + column.
func seatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, errors.New("boarding pass must be 10 characters")
	}
	var id int
	for i := 0; i < len(pass); i++ {
		zero, one := byte('F'), byte('B')
		if i >= 7 {
			zero, one = 'L', 'R'
		}
		id <<= 1
		switch pass[i] {
		case zero:
		case one:
			id |= 1
		default:
			return 0, errors.New("bad character in boarding pass")
		}
	}
	return id, nil
}

func parseSeats(input string) ([]int, error) {
	var ids []int
	for i, l := range lines(input) {
		id, err := seatID(l)
		if err != nil {
			return nil, malformed(i+1, l, "%s", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (day5) partA(input string) (any, error) {
	ids, err := parseSeats(input)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, noSolution("no boarding passes")
	}
	max := ids[0]
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// partB finds the first free seat after the first taken one.
func (day5) partB(input string) (any, error) {
	ids, err := parseSeats(input)
	if err != nil {
		return nil, err
	}
	var taken [numSeats]bool
	for _, id := range ids {
		taken[id] = true
	}
	seenTaken := false
	for id, t := range taken {
		if t {
			seenTaken = true
		} else if seenTaken {
			return id, nil
		}
	}
	return nil, noSolution("no free seat")
}
