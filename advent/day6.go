package main

import (
	"math/bits"
)

func init() {
	register(6, func() solution { return day6{} })
}

type day6 struct{}

// A questionSet has bit i set if question 'a'+i was answered yes.
type questionSet uint32

// parseAnswers returns, for each group, one questionSet per person.
func parseAnswers(input string) ([][]questionSet, error) {
	var groups [][]questionSet
	for _, para := range paragraphs(input) {
		group := make([]questionSet, len(para))
		for i, l := range para {
			for j := 0; j < len(l.text); j++ {
				c := l.text[j]
				if c < 'a' || c > 'z' {
					return nil, malformed(l.n, l.text, "unexpected %q", c)
				}
				group[i] |= 1 << (c - 'a')
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (day6) partA(input string) (any, error) {
	return answer(sumGroups(input, questionSet(0), func(acc, s questionSet) questionSet { return acc | s }))
}

func (day6) partB(input string) (any, error) {
	return answer(sumGroups(input, ^questionSet(0), func(acc, s questionSet) questionSet { return acc & s }))
}

// sumGroups folds each group's answers with combine and sums the number
// of questions in each result.
func sumGroups(input string, init questionSet, combine func(acc, s questionSet) questionSet) (int, error) {
	groups, err := parseAnswers(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, group := range groups {
		acc := init
		for _, s := range group {
			acc = combine(acc, s)
		}
		sum += bits.OnesCount32(uint32(acc))
	}
	return sum, nil
}
