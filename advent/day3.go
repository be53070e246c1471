package main

func init() {
	register(3, func() solution { return day3{} })
}

type day3 struct{}

// treeMap is the slope; it repeats endlessly to the right.
type treeMap [][]byte

func (day3) partA(input string) (any, error) {
	m, err := parseGrid(input, ".#")
	if err != nil {
		return nil, err
	}
	return treeMap(m).treesOnSlope(vec2{3, 1}), nil
}

func (day3) partB(input string) (any, error) {
	m, err := parseGrid(input, ".#")
	if err != nil {
		return nil, err
	}
	product := 1
	for _, slope := range []vec2{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}} {
		product *= treeMap(m).treesOnSlope(slope)
	}
	return product, nil
}

// treesOnSlope counts the trees hit going from the top-left corner to the
// bottom, moving slope.x right and slope.y down at each step.
func (m treeMap) treesOnSlope(slope vec2) int {
	var trees int
	width := len(m[0])
	for x, y := 0, 0; y < len(m); x, y = (x+slope.x)%width, y+slope.y {
		if m[y][x] == '#' {
			trees++
		}
	}
	return trees
}
