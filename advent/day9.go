package main

import (
	"fmt"

	"github.com/vaughan0/go-ini"
)

func init() {
	register(9, func() solution { return &day9{preamble: 25} })
}

type day9 struct {
	preamble int
}

func (d *day9) configure(sec ini.Section) error {
	if err := setParams(sec, map[string]param{"preamble": intParam(&d.preamble)}); err != nil {
		return err
	}
	if d.preamble < 2 {
		return fmt.Errorf("preamble must be at least 2")
	}
	return nil
}

func (d *day9) partA(input string) (any, error) {
	nums, err := parseInts(input)
	if err != nil {
		return nil, err
	}
	return answer(firstInvalid(nums, d.preamble))
}

func (d *day9) partB(input string) (any, error) {
	nums, err := parseInts(input)
	if err != nil {
		return nil, err
	}
	target, err := firstInvalid(nums, d.preamble)
	if err != nil {
		return nil, err
	}
	run, ok := contiguousSum(nums, target)
	if !ok {
		return nil, noSolution("no contiguous run sums to %d", target)
	}
	lo, hi := run[0], run[0]
	for _, n := range run {
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return lo + hi, nil
}

// firstInvalid returns the first number after the preamble that is not
// the sum of two different numbers among the preamble numbers before it.
func firstInvalid(nums []int, preamble int) (int, error) {
	for i := preamble; i < len(nums); i++ {
		if !hasPairSum(nums[i-preamble:i], nums[i]) {
			return nums[i], nil
		}
	}
	return 0, noSolution("every number is a sum of two of the %d before it", preamble)
}

func hasPairSum(window []int, target int) bool {
	for i, x := range window {
		for _, y := range window[i+1:] {
			if x != y && x+y == target {
				return true
			}
		}
	}
	return false
}

// contiguousSum finds a run of at least two consecutive numbers that sums
// to target.
func contiguousSum(nums []int, target int) ([]int, bool) {
	for lo := range nums {
		sum := nums[lo]
		for hi := lo + 1; hi < len(nums); hi++ {
			sum += nums[hi]
			if sum == target {
				return nums[lo : hi+1], true
			}
		}
	}
	return nil, false
}
