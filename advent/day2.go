package main

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register(2, func() solution { return day2{} })
}

type day2 struct{}

type passwordPolicy struct {
	lo, hi   int
	char     byte
	password string
}

func parsePasswordPolicy(s string) (passwordPolicy, error) {
	var p passwordPolicy
	rng, rest, ok := strings.Cut(s, " ")
	if !ok {
		return p, errors.New("missing policy")
	}
	lo, hi, ok := strings.Cut(rng, "-")
	if !ok {
		return p, errors.New("bad range")
	}
	var err error
	if p.lo, err = strconv.Atoi(lo); err != nil {
		return p, err
	}
	if p.hi, err = strconv.Atoi(hi); err != nil {
		return p, err
	}
	if p.lo < 1 || p.hi < p.lo {
		return p, errors.New("bad range")
	}
	char, password, ok := strings.Cut(rest, ": ")
	if !ok || len(char) != 1 {
		return p, errors.New("bad letter")
	}
	p.char = char[0]
	p.password = password
	return p, nil
}

// validCount reports whether the letter appears between lo and hi times.
func (p passwordPolicy) validCount() bool {
	n := strings.Count(p.password, string(p.char))
	return n >= p.lo && n <= p.hi
}

// validPosition reports whether exactly one of the (1-based) positions
// lo and hi holds the letter.
func (p passwordPolicy) validPosition() bool {
	at := func(i int) bool {
		return i <= len(p.password) && p.password[i-1] == p.char
	}
	return at(p.lo) != at(p.hi)
}

func (day2) partA(input string) (any, error) {
	return answer(countPolicies(input, passwordPolicy.validCount))
}

func (day2) partB(input string) (any, error) {
	return answer(countPolicies(input, passwordPolicy.validPosition))
}

func countPolicies(input string, valid func(passwordPolicy) bool) (int, error) {
	var n int
	for i, l := range lines(input) {
		p, err := parsePasswordPolicy(l)
		if err != nil {
			return 0, malformed(i+1, l, "%s", err)
		}
		if valid(p) {
			n++
		}
	}
	return n, nil
}
