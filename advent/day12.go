package main

import (
	"fmt"
	"strconv"
)

func init() {
	register(12, func() solution { return day12{} })
}

type day12 struct{}

type navAction struct {
	kind byte // one of NSEWLRF
	n    int
}

var headings = map[byte]vec2{
	'N': {0, 1},
	'S': {0, -1},
	'E': {1, 0},
	'W': {-1, 0},
}

func parseNavActions(input string) ([]navAction, error) {
	var actions []navAction
	for i, l := range lines(input) {
		if len(l) < 2 {
			return nil, malformed(i+1, l, "action too short")
		}
		a := navAction{kind: l[0]}
		var err error
		if a.n, err = strconv.Atoi(l[1:]); err != nil || a.n < 0 {
			return nil, malformed(i+1, l, "bad amount")
		}
		switch a.kind {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if a.n%90 != 0 {
				return nil, malformed(i+1, l, "turn of %d degrees is not a multiple of 90", a.n)
			}
		default:
			return nil, malformed(i+1, l, "unknown action %q", a.kind)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// A ferry moves along dir when going forward. Compass actions either
// move the ferry itself or, when steering by waypoint, move dir.
type ferry struct {
	pos         vec2
	dir         vec2
	useWaypoint bool
}

func (f *ferry) act(a navAction) {
	switch a.kind {
	case 'N', 'S', 'E', 'W':
		d := headings[a.kind].scalarMul(a.n)
		if f.useWaypoint {
			f.dir = f.dir.add(d)
		} else {
			f.pos = f.pos.add(d)
		}
	case 'L':
		f.dir = f.dir.rotate(-a.n / 90)
	case 'R':
		f.dir = f.dir.rotate(a.n / 90)
	case 'F':
		f.pos = f.pos.add(f.dir.scalarMul(a.n))
	default:
		panic(fmt.Sprintf("unexpected action %q", a.kind))
	}
}

func (day12) partA(input string) (any, error) {
	return answer(navigate(input, ferry{dir: headings['E']}))
}

func (day12) partB(input string) (any, error) {
	return answer(navigate(input, ferry{dir: vec2{10, 1}, useWaypoint: true}))
}

func navigate(input string, f ferry) (int, error) {
	actions, err := parseNavActions(input)
	if err != nil {
		return 0, err
	}
	for _, a := range actions {
		f.act(a)
	}
	return f.pos.manhattan(), nil
}
