package main

import (
	"fmt"
	"slices"

	"github.com/vaughan0/go-ini"
)

func init() {
	register(17, func() solution {
		return &day17{
			generations: 6,
			dimsA:       3,
			dimsB:       4,
			rule:        conwayRule,
		}
	})
}

type day17 struct {
	generations  int
	dimsA, dimsB int
	rule         lifeRule
}

func (d *day17) configure(sec ini.Section) error {
	err := setParams(sec, map[string]param{
		"generations": intParam(&d.generations),
		"dimsA":       intParam(&d.dimsA),
		"dimsB":       intParam(&d.dimsB),
		"survive":     intListParam(&d.rule.survive),
		"birth":       intListParam(&d.rule.birth),
	})
	if err != nil {
		return err
	}
	if d.generations < 0 {
		return fmt.Errorf("generations must not be negative")
	}
	for _, dims := range []int{d.dimsA, d.dimsB} {
		if dims < 2 || dims > maxDims {
			return fmt.Errorf("dimensions must be between 2 and %d", maxDims)
		}
	}
	return nil
}

// maxDims is the most dimensions a pocket can have.
const maxDims = 6

// A cube is a position in the pocket dimension. Axes at or beyond the
// pocket's dimension count are always zero.
type cube [maxDims]int

func (c cube) add(c1 cube) cube {
	for i := range c {
		c[i] += c1[i]
	}
	return c
}

// A lifeRule gives the active-neighbor counts (not counting the cube
// itself) under which an active cube stays active and an inactive cube
// becomes active.
type lifeRule struct {
	survive []int
	birth   []int
}

var conwayRule = lifeRule{survive: []int{2, 3}, birth: []int{3}}

func (r lifeRule) next(active bool, neighbors int) bool {
	if active {
		return slices.Contains(r.survive, neighbors)
	}
	return slices.Contains(r.birth, neighbors)
}

// A pocket is an unbounded lattice of cubes in which only the active
// cubes are stored; every other cube is inactive.
type pocket struct {
	dims    int
	rule    lifeRule
	offsets []cube
	active  map[cube]struct{}
}

func newPocket(dims int, rule lifeRule) *pocket {
	if dims < 1 || dims > maxDims {
		panic(fmt.Sprintf("pocket with %d dimensions", dims))
	}
	return &pocket{
		dims:    dims,
		rule:    rule,
		offsets: neighborOffsets(dims),
		active:  make(map[cube]struct{}),
	}
}

// neighborOffsets returns every vector in {-1,0,1}^dims except zero:
// 3^dims - 1 of them.
func neighborOffsets(dims int) []cube {
	total := 1
	for i := 0; i < dims; i++ {
		total *= 3
	}
	offsets := make([]cube, 0, total-1)
	for n := 0; n < total; n++ {
		var c cube
		for i, m := 0, n; i < dims; i, m = i+1, m/3 {
			c[i] = m%3 - 1
		}
		if c != (cube{}) {
			offsets = append(offsets, c)
		}
	}
	return offsets
}

// step advances one generation. Only cubes next to an active cube can
// have a nonzero neighbor count; isolated active cubes are checked
// separately against a count of 0.
func (p *pocket) step() {
	counts := make(map[cube]int, len(p.active)*len(p.offsets)/2)
	for c := range p.active {
		for _, off := range p.offsets {
			counts[c.add(off)]++
		}
	}
	next := make(map[cube]struct{}, len(p.active))
	for c := range p.active {
		if _, ok := counts[c]; !ok && p.rule.next(true, 0) {
			next[c] = struct{}{}
		}
	}
	for c, n := range counts {
		_, active := p.active[c]
		if p.rule.next(active, n) {
			next[c] = struct{}{}
		}
	}
	p.active = next
}

func (p *pocket) numActive() int { return len(p.active) }

// parseSlice reads a 2D slice of the pocket: '#' is active, '.' inactive.
// Rows run along the second axis and columns along the first.
func parseSlice(input string) ([][2]int, error) {
	grid, err := parseGrid(input, ".#")
	if err != nil {
		return nil, err
	}
	var active [][2]int
	for y, row := range grid {
		for x, c := range row {
			if c == '#' {
				active = append(active, [2]int{x, y})
			}
		}
	}
	return active, nil
}

func (d *day17) dump(input string) (any, error) { return answer(parseSlice(input)) }

func (d *day17) partA(input string) (any, error) { return answer(d.boot(input, d.dimsA)) }

func (d *day17) partB(input string) (any, error) { return answer(d.boot(input, d.dimsB)) }

// boot seeds a pocket with the input slice and runs the boot cycle.
func (d *day17) boot(input string, dims int) (int, error) {
	slice, err := parseSlice(input)
	if err != nil {
		return 0, err
	}
	p := newPocket(dims, d.rule)
	for _, xy := range slice {
		var c cube
		c[0], c[1] = xy[0], xy[1]
		p.active[c] = struct{}{}
	}
	for i := 0; i < d.generations; i++ {
		p.step()
	}
	return p.numActive(), nil
}
