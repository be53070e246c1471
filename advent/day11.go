package main

func init() {
	register(11, func() solution { return day11{} })
}

type day11 struct{}

const (
	seatFloor    = '.'
	seatEmpty    = 'L'
	seatOccupied = '#'
)

var compass = []vec2{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// A seatLayout is the seats of the waiting area (floor excluded) along
// with, for each seat, the seats whose occupants it pays attention to.
type seatLayout struct {
	occupied  []bool
	neighbors [][]int
	tolerance int // leave when at least this many neighbors are occupied
}

// newSeatLayout builds the layout. Each seat watches the first seat seen
// in every compass direction, looking at most reach cells away (reach <= 0
// means unlimited).
func newSeatLayout(grid [][]byte, reach, tolerance int) *seatLayout {
	index := make(map[vec2]int)
	for y, row := range grid {
		for x, c := range row {
			if c != seatFloor {
				index[vec2{x, y}] = len(index)
			}
		}
	}
	l := &seatLayout{
		occupied:  make([]bool, len(index)),
		neighbors: make([][]int, len(index)),
		tolerance: tolerance,
	}
	for p, i := range index {
		l.occupied[i] = grid[p.y][p.x] == seatOccupied
		for _, dir := range compass {
			q := p
			for dist := 1; reach <= 0 || dist <= reach; dist++ {
				q = q.add(dir)
				if q.y < 0 || q.y >= len(grid) || q.x < 0 || q.x >= len(grid[q.y]) {
					break
				}
				if j, ok := index[q]; ok {
					l.neighbors[i] = append(l.neighbors[i], j)
					break
				}
			}
		}
	}
	return l
}

// settle applies the seating rules until nobody moves.
func (l *seatLayout) settle() {
	next := make([]bool, len(l.occupied))
	for changed := true; changed; {
		changed = false
		for i, occ := range l.occupied {
			var n int
			for _, j := range l.neighbors[i] {
				if l.occupied[j] {
					n++
				}
			}
			switch {
			case !occ && n == 0:
				next[i] = true
				changed = true
			case occ && n >= l.tolerance:
				next[i] = false
				changed = true
			default:
				next[i] = occ
			}
		}
		l.occupied, next = next, l.occupied
	}
}

func (l *seatLayout) numOccupied() int {
	var n int
	for _, occ := range l.occupied {
		if occ {
			n++
		}
	}
	return n
}

func (day11) partA(input string) (any, error) { return answer(settledSeats(input, 1, 4)) }

func (day11) partB(input string) (any, error) { return answer(settledSeats(input, 0, 5)) }

func settledSeats(input string, reach, tolerance int) (int, error) {
	grid, err := parseGrid(input, string([]byte{seatFloor, seatEmpty, seatOccupied}))
	if err != nil {
		return 0, err
	}
	l := newSeatLayout(grid, reach, tolerance)
	l.settle()
	return l.numOccupied(), nil
}
