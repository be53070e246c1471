package main

import (
	"sort"
)

func init() {
	register(10, func() solution { return day10{} })
}

type day10 struct{}

const maxJoltGap = 3

// joltChain returns the sorted adapter ratings bracketed by the outlet (0)
// and the device (3 above the highest adapter).
func joltChain(input string) ([]int, error) {
	adapters, err := parseInts(input)
	if err != nil {
		return nil, err
	}
	chain := append([]int{0}, adapters...)
	sort.Ints(chain)
	if chain[0] < 0 {
		return nil, malformed(0, "", "negative joltage %d", chain[0])
	}
	chain = append(chain, chain[len(chain)-1]+maxJoltGap)
	for i := 1; i < len(chain); i++ {
		if gap := chain[i] - chain[i-1]; gap > maxJoltGap {
			return nil, noSolution("no adapter bridges %d to %d jolts", chain[i-1], chain[i])
		}
	}
	return chain, nil
}

func (day10) partA(input string) (any, error) {
	chain, err := joltChain(input)
	if err != nil {
		return nil, err
	}
	var gaps [maxJoltGap + 1]int
	for i := 1; i < len(chain); i++ {
		gaps[chain[i]-chain[i-1]]++
	}
	return gaps[1] * gaps[3], nil
}

// partB counts the distinct adapter subsets that still connect the
// outlet to the device.
func (day10) partB(input string) (any, error) {
	chain, err := joltChain(input)
	if err != nil {
		return nil, err
	}
	ways := make([]int, len(chain))
	ways[0] = 1
	for i := 1; i < len(chain); i++ {
		for j := i - 1; j >= 0 && chain[i]-chain[j] <= maxJoltGap; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1], nil
}
