package main

import (
	"errors"
	"testing"
)

func TestPassportValid(t *testing.T) {
	base := func() passport {
		return passport{
			"byr": "1980", "iyr": "2012", "eyr": "2030", "hgt": "74in",
			"hcl": "#623a2f", "ecl": "grn", "pid": "087499704",
		}
	}
	for _, tt := range []struct {
		key, value string
		want       bool
	}{
		{"", "", true},
		{"cid", "anything", true},
		{"xyz", "1", false},
		{"byr", "2002", true},
		{"byr", "2003", false},
		{"byr", "02002", false},
		{"iyr", "2009", false},
		{"eyr", "2031", false},
		{"hgt", "60in", true},
		{"hgt", "190cm", true},
		{"hgt", "190in", false},
		{"hgt", "190", false},
		{"hgt", "cm", false},
		{"hcl", "#123abc", true},
		{"hcl", "#123abz", false},
		{"hcl", "123abc", false},
		{"ecl", "brn", true},
		{"ecl", "wat", false},
		{"pid", "000000001", true},
		{"pid", "0123456789", false},
	} {
		p := base()
		if tt.key != "" {
			p[tt.key] = tt.value
		}
		if got := p.valid(); got != tt.want {
			t.Errorf("%s:%s: got valid=%t; want %t", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestUnknownPassportKey(t *testing.T) {
	const input = "byr:1980 iyr:2012 eyr:2030 hgt:74in hcl:#623a2f ecl:grn pid:087499704 xyz:1\n"
	a, err := (day4{}).partA(input)
	if err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Errorf("part a: got %v; want 1 (all required fields present)", a)
	}
	b, err := (day4{}).partB(input)
	if err != nil {
		t.Fatal(err)
	}
	if b != 0 {
		t.Errorf("part b: got %v; want 0", b)
	}
}

func TestParsePassportsMalformed(t *testing.T) {
	for _, input := range []string{
		"foo",
		"byr:1980 iyr",
		"byr:1980\n:2012\n",
	} {
		if _, err := parsePassports(input); !errors.Is(err, errMalformedInput) {
			t.Errorf("parsePassports(%q): got error %v; want malformed input", input, err)
		}
	}
}
