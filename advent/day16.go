package main

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

func init() {
	register(16, func() solution { return &day16{prefix: "departure"} })
}

type day16 struct {
	prefix string
}

func (d *day16) configure(sec ini.Section) error {
	return setParams(sec, map[string]param{"prefix": stringParam(&d.prefix)})
}

// maxTicketFields bounds the rule count so that a set of rules fits in
// a fieldSet.
const maxTicketFields = 64

// A fieldSet has bit i set for rule i.
type fieldSet uint64

type valueRange struct {
	lo, hi int // inclusive
}

type fieldRule struct {
	name   string
	ranges []valueRange
}

func (r fieldRule) allows(v int) bool {
	for _, rng := range r.ranges {
		if v >= rng.lo && v <= rng.hi {
			return true
		}
	}
	return false
}

type ticket []int

type ticketNotes struct {
	rules  []fieldRule
	mine   ticket
	nearby []ticket
}

func parseFieldRule(s string) (fieldRule, error) {
	var r fieldRule
	name, ranges, ok := strings.Cut(s, ": ")
	if !ok || name == "" {
		return r, fmt.Errorf("missing field name")
	}
	r.name = name
	for _, rng := range strings.Split(ranges, " or ") {
		lo, hi, ok := strings.Cut(rng, "-")
		if !ok {
			return r, fmt.Errorf("bad range %q", rng)
		}
		var vr valueRange
		var err error
		if vr.lo, err = strconv.Atoi(lo); err != nil {
			return r, err
		}
		if vr.hi, err = strconv.Atoi(hi); err != nil {
			return r, err
		}
		if vr.hi < vr.lo {
			return r, fmt.Errorf("empty range %q", rng)
		}
		r.ranges = append(r.ranges, vr)
	}
	return r, nil
}

func parseTicketNotes(input string) (*ticketNotes, error) {
	sections := paragraphs(input)
	if len(sections) != 3 {
		return nil, malformed(0, "", "want 3 sections, got %d", len(sections))
	}
	var notes ticketNotes
	for _, l := range sections[0] {
		r, err := parseFieldRule(l.text)
		if err != nil {
			return nil, malformed(l.n, l.text, "%s", err)
		}
		notes.rules = append(notes.rules, r)
	}
	if len(notes.rules) > maxTicketFields {
		return nil, malformed(0, "", "%d rules is more than the %d supported", len(notes.rules), maxTicketFields)
	}
	parseTickets := func(section []numberedLine, header string) ([]ticket, error) {
		if section[0].text != header {
			return nil, malformed(section[0].n, section[0].text, "want %q", header)
		}
		var ts []ticket
		for _, l := range section[1:] {
			t, err := parseCommaInts(l.text)
			if err != nil {
				return nil, malformed(l.n, l.text, "bad ticket")
			}
			if len(t) != len(notes.rules) {
				return nil, malformed(l.n, l.text, "ticket has %d fields; want %d", len(t), len(notes.rules))
			}
			ts = append(ts, t)
		}
		return ts, nil
	}
	mine, err := parseTickets(sections[1], "your ticket:")
	if err != nil {
		return nil, err
	}
	if len(mine) != 1 {
		return nil, malformed(sections[1][0].n, sections[1][0].text, "want exactly one ticket of yours")
	}
	notes.mine = mine[0]
	if notes.nearby, err = parseTickets(sections[2], "nearby tickets:"); err != nil {
		return nil, err
	}
	return &notes, nil
}

// invalidValues returns the values of t that no rule allows.
func (n *ticketNotes) invalidValues(t ticket) []int {
	var invalid []int
	for _, v := range t {
		if !n.anyRuleAllows(v) {
			invalid = append(invalid, v)
		}
	}
	return invalid
}

func (n *ticketNotes) anyRuleAllows(v int) bool {
	for _, r := range n.rules {
		if r.allows(v) {
			return true
		}
	}
	return false
}

// resolveFields works out which rule governs each ticket position, using
// only nearby tickets whose every value some rule allows. A position whose
// values fit exactly one remaining rule is assigned that rule, which is
// then removed from every other position; this repeats until all
// positions are assigned. It returns the rule index for each position.
func (n *ticketNotes) resolveFields() ([]int, error) {
	all := fieldSet(1)<<len(n.rules) - 1 // shifting out all 64 bits wraps to ^0
	candidates := make([]fieldSet, len(n.rules))
	for pos := range candidates {
		candidates[pos] = all
	}
	for _, t := range n.nearby {
		if len(n.invalidValues(t)) > 0 {
			continue
		}
		for pos, v := range t {
			for i, r := range n.rules {
				if !r.allows(v) {
					candidates[pos] &^= 1 << i
				}
			}
		}
	}

	assigned := make([]int, len(candidates))
	for pos := range assigned {
		assigned[pos] = -1
	}
	for remaining := len(candidates); remaining > 0; remaining-- {
		pos := -1
		for p, c := range candidates {
			if assigned[p] < 0 && bits.OnesCount64(uint64(c)) == 1 {
				pos = p
				break
			}
		}
		if pos < 0 {
			return nil, noSolution("cannot narrow %d ticket positions to one field each", remaining)
		}
		rule := bits.TrailingZeros64(uint64(candidates[pos]))
		assigned[pos] = rule
		for p := range candidates {
			candidates[p] &^= 1 << rule
		}
	}
	return assigned, nil
}

func (d *day16) dump(input string) (any, error) { return answer(parseTicketNotes(input)) }

// partA sums the nearby ticket values that no rule allows.
func (d *day16) partA(input string) (any, error) {
	notes, err := parseTicketNotes(input)
	if err != nil {
		return nil, err
	}
	var sum int
	for _, t := range notes.nearby {
		for _, v := range notes.invalidValues(t) {
			sum += v
		}
	}
	return sum, nil
}

// partB multiplies the values on my ticket whose field name has the
// configured prefix.
func (d *day16) partB(input string) (any, error) {
	notes, err := parseTicketNotes(input)
	if err != nil {
		return nil, err
	}
	fields, err := notes.resolveFields()
	if err != nil {
		return nil, err
	}
	product := 1
	for pos, rule := range fields {
		if strings.HasPrefix(notes.rules[rule].name, d.prefix) {
			product *= notes.mine[pos]
		}
	}
	return product, nil
}
