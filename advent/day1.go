package main

import (
	"github.com/vaughan0/go-ini"
)

func init() {
	register(1, func() solution { return &day1{target: 2020} })
}

type day1 struct {
	target int
}

func (d *day1) configure(sec ini.Section) error {
	return setParams(sec, map[string]param{"target": intParam(&d.target)})
}

func (d *day1) dump(input string) (any, error) { return answer(parseInts(input)) }

func (d *day1) partA(input string) (any, error) { return d.productOfEntries(input, 2) }

func (d *day1) partB(input string) (any, error) { return d.productOfEntries(input, 3) }

func (d *day1) productOfEntries(input string, k int) (any, error) {
	entries, err := parseInts(input)
	if err != nil {
		return nil, err
	}
	picked, ok := findSum(entries, k, d.target)
	if !ok {
		return nil, noSolution("no %d entries sum to %d", k, d.target)
	}
	product := 1
	for _, n := range picked {
		product *= n
	}
	return product, nil
}

// findSum returns the first k entries (at distinct indexes, in input
// order) that sum to target.
func findSum(entries []int, k, target int) ([]int, bool) {
	// With no negative entries, a partial sum past the target can't recover.
	prune := true
	for _, n := range entries {
		if n < 0 {
			prune = false
			break
		}
	}
	picked := make([]int, 0, k)
	var search func(start, sum int) bool
	search = func(start, sum int) bool {
		if len(picked) == k {
			return sum == target
		}
		for i := start; i < len(entries); i++ {
			n := entries[i]
			if prune && sum+n > target {
				continue
			}
			picked = append(picked, n)
			if search(i+1, sum+n) {
				return true
			}
			picked = picked[:len(picked)-1]
		}
		return false
	}
	if !search(0, 0) {
		return nil, false
	}
	return picked, true
}
