package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDockingOp(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want dockingOp
	}{
		{"mem[8] = 11", writeOp{addr: 8, value: 11}},
		{
			"mask = 000000000000000000000000000000X1001X",
			maskOp{
				ones:     0b010010,
				zeros:    (1<<wordBits - 1) &^ 0b110011,
				floating: 0b100001,
			},
		},
	} {
		got, err := parseDockingOp(tt.s)
		if err != nil {
			t.Errorf("parseDockingOp(%q): %s", tt.s, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(maskOp{}, writeOp{})); diff != "" {
			t.Errorf("parseDockingOp(%q) (-want +got):\n%s", tt.s, diff)
		}
	}
}

func TestParseDockingOpMalformed(t *testing.T) {
	for _, s := range []string{
		"mask = 0101",
		"mask = " + strings.Repeat("2", wordBits),
		"mem[x] = 1",
		"mem[1 = 1",
		"mem[1] = 68719476736", // 2^36
		"reg[1] = 1",
		"mem[1]=1",
	} {
		if _, err := parseDockingProgram(s); !errors.Is(err, errMalformedInput) {
			t.Errorf("%q: got error %v; want malformed input", s, err)
		}
	}
}

func TestMaskAddress(t *testing.T) {
	d := &dockingMemory{mem: make(map[uint64]uint64)}
	ops, err := parseDockingProgram("mask = 000000000000000000000000000000X1001X\nmem[42] = 100\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.run(ops, maskAddress); err != nil {
		t.Fatal(err)
	}
	want := map[uint64]uint64{26: 100, 27: 100, 58: 100, 59: 100}
	if diff := cmp.Diff(want, d.mem); diff != "" {
		t.Errorf("memory (-want +got):\n%s", diff)
	}
}

func TestMaskAddressTooManyFloating(t *testing.T) {
	input := "mask = " + strings.Repeat("X", wordBits) + "\nmem[1] = 1\n"
	_, err := runDocking(input, maskAddress)
	if !errors.Is(err, errTooManyFloating) {
		t.Errorf("got error %v; want too many floating bits", err)
	}
	if errors.Is(err, errNoSolution) || errors.Is(err, errMalformedInput) {
		t.Errorf("error %v is reported as a puzzle outcome", err)
	}
	// The version 1 decoder ignores floating bits.
	got, err := runDocking(input, maskValue)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got %d; want 1", got)
	}
}

func TestNoMask(t *testing.T) {
	for _, write := range []decoder{maskValue, maskAddress} {
		got, err := runDocking("mem[3] = 7\nmem[4] = 8\n", write)
		if err != nil {
			t.Fatal(err)
		}
		if got != 15 {
			t.Errorf("got %d; want 15", got)
		}
	}
}
