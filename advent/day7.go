package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(7, func() solution { return day7{} })
}

type day7 struct{}

const myBag = "shiny gold"

type bagCount struct {
	color string
	n     int
}

// bagRules maps each bag color to the bags it must directly contain.
type bagRules map[string][]bagCount

func parseBagRules(input string) (bagRules, error) {
	rules := make(bagRules)
	for i, l := range lines(input) {
		color, contents, ok := strings.Cut(l, " bags contain ")
		if !ok || !strings.HasSuffix(contents, ".") {
			return nil, malformed(i+1, l, "not a bag rule")
		}
		if _, ok := rules[color]; ok {
			return nil, malformed(i+1, l, "duplicate rule for %s bags", color)
		}
		contents = strings.TrimSuffix(contents, ".")
		rules[color] = nil
		if contents == "no other bags" {
			continue
		}
		for _, part := range strings.Split(contents, ", ") {
			part = strings.TrimSuffix(strings.TrimSuffix(part, "s"), " bag")
			num, inner, ok := strings.Cut(part, " ")
			if !ok {
				return nil, malformed(i+1, l, "bad contents %q", part)
			}
			n, err := strconv.Atoi(num)
			if err != nil || n < 1 {
				return nil, malformed(i+1, l, "bad count %q", num)
			}
			rules[color] = append(rules[color], bagCount{inner, n})
		}
	}
	return rules, nil
}

func (day7) dump(input string) (any, error) { return answer(parseBagRules(input)) }

// partA counts the colors that can eventually contain a shiny gold bag.
func (day7) partA(input string) (any, error) {
	rules, err := parseBagRules(input)
	if err != nil {
		return nil, err
	}
	containedBy := make(map[string][]string)
	for outer, contents := range rules {
		for _, c := range contents {
			containedBy[c.color] = append(containedBy[c.color], outer)
		}
	}
	seen := make(map[string]bool)
	queue := []string{myBag}
	for len(queue) > 0 {
		color := queue[0]
		queue = queue[1:]
		for _, outer := range containedBy[color] {
			if !seen[outer] {
				seen[outer] = true
				queue = append(queue, outer)
			}
		}
	}
	delete(seen, myBag)
	return len(seen), nil
}

// partB counts the bags inside one shiny gold bag.
func (day7) partB(input string) (any, error) {
	rules, err := parseBagRules(input)
	if err != nil {
		return nil, err
	}
	if _, ok := rules[myBag]; !ok {
		return nil, noSolution("no rule for %s bags", myBag)
	}
	return rules.countInside(myBag), nil
}

func (r bagRules) countInside(color string) int {
	const inProgress = -1
	memo := make(map[string]int)
	var count func(color string) int
	count = func(color string) int {
		if n, ok := memo[color]; ok {
			if n == inProgress {
				panic(fmt.Sprintf("%s bags contain themselves", color))
			}
			return n
		}
		memo[color] = inProgress
		var total int
		for _, c := range r[color] {
			total += c.n * (1 + count(c.color))
		}
		memo[color] = total
		return total
	}
	return count(color)
}
