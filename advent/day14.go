package main

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

func init() {
	register(14, func() solution { return day14{} })
}

type day14 struct{}

const (
	wordBits = 36
	// Writes through a mask with more floating bits than this would touch
	// too many addresses to finish in reasonable time.
	maxFloatingBits = 20
)

// errTooManyFloating is returned by the version 2 decoder for a mask
// over the maxFloatingBits limit. The input is well-formed; the answer is
// just too expensive to compute.
var errTooManyFloating = errors.New("too many floating bits")

// A dockingOp is either a maskOp or a writeOp.
type dockingOp interface {
	dockingOp()
}

// maskOp sets the bitmask. A parsed mask has each bit position in
// exactly one of ones, zeros, or floating.
type maskOp struct {
	ones, zeros, floating uint64
}

type writeOp struct {
	addr, value uint64
}

func (maskOp) dockingOp()  {}
func (writeOp) dockingOp() {}

func parseDockingOp(s string) (dockingOp, error) {
	lhs, rhs, ok := strings.Cut(s, " = ")
	if !ok {
		return nil, fmt.Errorf("missing ' = '")
	}
	if lhs == "mask" {
		if len(rhs) != wordBits {
			return nil, fmt.Errorf("mask must have %d bits", wordBits)
		}
		var m maskOp
		for i := 0; i < len(rhs); i++ {
			bit := uint64(1) << (wordBits - 1 - i)
			switch rhs[i] {
			case '0':
				m.zeros |= bit
			case '1':
				m.ones |= bit
			case 'X':
				m.floating |= bit
			default:
				return nil, fmt.Errorf("bad mask bit %q", rhs[i])
			}
		}
		return m, nil
	}
	addr, ok := strings.CutPrefix(lhs, "mem[")
	if !ok || !strings.HasSuffix(addr, "]") {
		return nil, fmt.Errorf("unknown target %q", lhs)
	}
	var w writeOp
	var err error
	if w.addr, err = strconv.ParseUint(strings.TrimSuffix(addr, "]"), 10, wordBits); err != nil {
		return nil, err
	}
	if w.value, err = strconv.ParseUint(rhs, 10, wordBits); err != nil {
		return nil, err
	}
	return w, nil
}

func parseDockingProgram(input string) ([]dockingOp, error) {
	var ops []dockingOp
	for i, l := range lines(input) {
		op, err := parseDockingOp(l)
		if err != nil {
			return nil, malformed(i+1, l, "%s", err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// dockingMemory is the memory of the docking program. The zero mask
// leaves values and addresses unchanged under either decoder.
type dockingMemory struct {
	mask maskOp
	mem  map[uint64]uint64
}

// A decoder stores the value of w using the current mask.
type decoder func(d *dockingMemory, w writeOp) error

// maskValue is the version 1 decoder: the mask overwrites bits of the value.
func maskValue(d *dockingMemory, w writeOp) error {
	d.mem[w.addr] = (w.value | d.mask.ones) &^ d.mask.zeros
	return nil
}

// maskAddress is the version 2 decoder: the mask sets bits of the address,
// and each floating bit takes both values, so the value is written to
// 2^(floating bits) addresses.
func maskAddress(d *dockingMemory, w writeOp) error {
	floating := d.mask.floating
	if n := bits.OnesCount64(floating); n > maxFloatingBits {
		return fmt.Errorf("mask has %d floating bits, limit %d: %w", n, maxFloatingBits, errTooManyFloating)
	}
	base := (w.addr | d.mask.ones) &^ floating
	// Visit every subset of the floating bits.
	for sub := floating; ; sub = (sub - 1) & floating {
		d.mem[base|sub] = w.value
		if sub == 0 {
			break
		}
	}
	return nil
}

func (d *dockingMemory) run(ops []dockingOp, write decoder) error {
	for _, op := range ops {
		switch op := op.(type) {
		case maskOp:
			d.mask = op
		case writeOp:
			if err := write(d, op); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("unexpected docking op %T", op))
		}
	}
	return nil
}

func (d *dockingMemory) sum() uint64 {
	var sum uint64
	for _, v := range d.mem {
		sum += v
	}
	return sum
}

func (day14) dump(input string) (any, error) { return answer(parseDockingProgram(input)) }

func (day14) partA(input string) (any, error) { return answer(runDocking(input, maskValue)) }

func (day14) partB(input string) (any, error) { return answer(runDocking(input, maskAddress)) }

func runDocking(input string, write decoder) (uint64, error) {
	ops, err := parseDockingProgram(input)
	if err != nil {
		return 0, err
	}
	d := &dockingMemory{mem: make(map[uint64]uint64)}
	if err := d.run(ops, write); err != nil {
		return 0, err
	}
	return d.sum(), nil
}
