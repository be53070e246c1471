package main

import (
	"strconv"
	"strings"
)

func init() {
	register(4, func() solution { return day4{} })
}

type day4 struct{}

type passport map[string]string

var requiredPassportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

func parsePassports(input string) ([]passport, error) {
	var ps []passport
	for _, group := range paragraphs(input) {
		p := make(passport)
		for _, l := range group {
			for _, field := range strings.Fields(l.text) {
				k, v, ok := strings.Cut(field, ":")
				if !ok || k == "" {
					return nil, malformed(l.n, l.text, "bad field %q", field)
				}
				p[k] = v
			}
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (day4) dump(input string) (any, error) { return answer(parsePassports(input)) }

func (day4) partA(input string) (any, error) {
	return answer(countPassports(input, passport.complete))
}

func (day4) partB(input string) (any, error) {
	return answer(countPassports(input, func(p passport) bool {
		return p.complete() && p.valid()
	}))
}

func countPassports(input string, ok func(passport) bool) (int, error) {
	ps, err := parsePassports(input)
	if err != nil {
		return 0, err
	}
	var n int
	for _, p := range ps {
		if ok(p) {
			n++
		}
	}
	return n, nil
}

func (p passport) complete() bool {
	for _, k := range requiredPassportFields {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

// valid reports whether every field present holds a legal value.
// Unknown fields make the passport invalid; cid is always accepted.
func (p passport) valid() bool {
	for k, v := range p {
		var ok bool
		switch k {
		case "byr":
			ok = yearBetween(v, 1920, 2002)
		case "iyr":
			ok = yearBetween(v, 2010, 2020)
		case "eyr":
			ok = yearBetween(v, 2020, 2030)
		case "hgt":
			ok = validHeight(v)
		case "hcl":
			ok = len(v) == 7 && v[0] == '#' && allIn(v[1:], "0123456789abcdef")
		case "ecl":
			switch v {
			case "amb", "blu", "brn", "gry", "grn", "hzl", "oth":
				ok = true
			}
		case "pid":
			ok = len(v) == 9 && allIn(v, "0123456789")
		case "cid":
			ok = true
		}
		if !ok {
			return false
		}
	}
	return true
}

func yearBetween(s string, min, max int) bool {
	if len(s) != 4 || !allIn(s, "0123456789") {
		return false
	}
	n, _ := strconv.Atoi(s)
	return n >= min && n <= max
}

func validHeight(s string) bool {
	var min, max int
	switch {
	case strings.HasSuffix(s, "cm"):
		min, max = 150, 193
	case strings.HasSuffix(s, "in"):
		min, max = 59, 76
	default:
		return false
	}
	digits := s[:len(s)-2]
	if digits == "" || !allIn(digits, "0123456789") {
		return false
	}
	n, err := strconv.Atoi(digits)
	return err == nil && n >= min && n <= max
}

func allIn(s, chars string) bool {
	for _, r := range s {
		if !strings.ContainsRune(chars, r) {
			return false
		}
	}
	return true
}
