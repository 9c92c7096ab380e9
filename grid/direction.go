package grid

// Direction indexes DirVectors
// N is "up" (y-1), matching row-major [y][x] storage
type Direction int8

const (
	DirN     Direction = 0
	DirNE    Direction = 1
	DirE     Direction = 2
	DirSE    Direction = 3
	DirS     Direction = 4
	DirSW    Direction = 5
	DirW     Direction = 6
	DirNW    Direction = 7
	DirCount Direction = 8
)

// DirVectors holds (dx, dy) per direction
// Order: N, NE, E, SE, S, SW, W, NW
var DirVectors = [DirCount][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var dirNames = [DirCount]string{"up", "up-right", "right", "down-right", "down", "down-left", "left", "up-left"}

// Expansion orders
var (
	// Cardinal is Up, Right, Down, Left
	Cardinal = []Direction{DirN, DirE, DirS, DirW}

	// RecursiveOrder is Up, Right, Left, Down, the recursive depth-first visit order
	RecursiveOrder = []Direction{DirN, DirE, DirW, DirS}

	// Octile is all 8 directions clockwise from Up
	Octile = []Direction{DirN, DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW}
)

func (d Direction) String() string {
	if d >= 0 && d < DirCount {
		return dirNames[d]
	}
	return "none"
}

// Diagonal reports whether both axes change
func (d Direction) Diagonal() bool {
	return d&1 == 1
}

// Delta returns (dx, dy)
func (d Direction) Delta() (int, int) {
	v := DirVectors[d]
	return v[0], v[1]
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	return (d + DirCount/2) % DirCount
}
