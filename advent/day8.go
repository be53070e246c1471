package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register(8, func() solution { return day8{} })
}

type day8 struct{}

type opcode uint8

const (
	opNop opcode = iota
	opAcc
	opJmp
)

var opcodeNames = [...]string{
	opNop: "nop",
	opAcc: "acc",
	opJmp: "jmp",
}

func (op opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("opcode(%d)", uint8(op))
}

type instruction struct {
	op  opcode
	arg int
}

// String formats insn the way it appears in a program ("jmp -3").
func (insn instruction) String() string {
	return fmt.Sprintf("%s %+d", insn.op, insn.arg)
}

func parseInstruction(s string) (instruction, error) {
	var insn instruction
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return insn, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	op := slices.Index(opcodeNames[:], fields[0])
	if op < 0 {
		return insn, fmt.Errorf("unknown operation %q", fields[0])
	}
	insn.op = opcode(op)
	arg := fields[1]
	if arg[0] != '+' && arg[0] != '-' {
		return insn, fmt.Errorf("argument %q has no sign", arg)
	}
	var err error
	insn.arg, err = strconv.Atoi(arg)
	if err != nil {
		return insn, err
	}
	return insn, nil
}

func parseProgram(input string) ([]instruction, error) {
	var prog []instruction
	for i, l := range lines(input) {
		insn, err := parseInstruction(l)
		if err != nil {
			return nil, malformed(i+1, l, "%s", err)
		}
		prog = append(prog, insn)
	}
	return prog, nil
}

// formatProgram is the inverse of parseProgram.
func formatProgram(prog []instruction) string {
	var b strings.Builder
	for _, insn := range prog {
		b.WriteString(insn.String())
		b.WriteByte('\n')
	}
	return b.String()
}

type exitState int

const (
	// exitHalted means the program counter moved past the last instruction.
	exitHalted exitState = iota
	// exitLooped means an instruction was about to run a second time.
	exitLooped
	// exitFault means the program counter jumped before the first instruction.
	exitFault
)

func (s exitState) String() string {
	switch s {
	case exitHalted:
		return "halted"
	case exitLooped:
		return "looped"
	case exitFault:
		return "fault"
	}
	return fmt.Sprintf("exitState(%d)", int(s))
}

type handheld struct {
	prog  []instruction
	pc    int
	acc   int
	steps int
}

// run executes from the current state until the program halts, faults,
// or would execute some instruction twice. Every instruction runs at
// most once, so run takes at most len(prog) steps.
func (h *handheld) run() exitState {
	seen := make([]bool, len(h.prog))
	for {
		switch {
		case h.pc >= len(h.prog):
			return exitHalted
		case h.pc < 0:
			return exitFault
		case seen[h.pc]:
			return exitLooped
		}
		seen[h.pc] = true
		h.step()
	}
}

func (h *handheld) step() {
	insn := h.prog[h.pc]
	switch insn.op {
	case opNop:
		h.pc++
	case opAcc:
		h.acc += insn.arg
		h.pc++
	case opJmp:
		h.pc += insn.arg
	default:
		panic(fmt.Sprintf("unexpected %s at %d", insn.op, h.pc))
	}
	h.steps++
}

// repair flips one jmp to nop (or nop to jmp), trying each in program
// order, and returns the accumulator of the first patched program that
// halts. prog is not modified.
func repair(prog []instruction) (int, error) {
	patched := slices.Clone(prog)
	for i, insn := range prog {
		switch insn.op {
		case opNop:
			patched[i].op = opJmp
		case opJmp:
			patched[i].op = opNop
		default:
			continue
		}
		h := handheld{prog: patched}
		if h.run() == exitHalted {
			return h.acc, nil
		}
		patched[i] = insn
	}
	return 0, noSolution("no single jmp/nop flip makes the program halt")
}

func (day8) dump(input string) (any, error) { return answer(parseProgram(input)) }

// partA reports the accumulator when the program stops, which for puzzle
// inputs is just before the first repeated instruction.
func (day8) partA(input string) (any, error) {
	prog, err := parseProgram(input)
	if err != nil {
		return nil, err
	}
	h := handheld{prog: prog}
	h.run()
	return h.acc, nil
}

func (day8) partB(input string) (any, error) {
	prog, err := parseProgram(input)
	if err != nil {
		return nil, err
	}
	return answer(repair(prog))
}
