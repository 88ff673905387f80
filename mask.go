package qrencode

// maskFunc reports whether mask i inverts the module at (row, col). Masks
// only ever apply to Data-classified modules; the caller is responsible for
// that filtering.
type maskFunc func(row, col int) bool

// masks holds the 8 standard mask patterns as a fixed table of closures
// rather than a switch, so scoring can range over them uniformly.
var masks = [8]maskFunc{
	func(row, col int) bool { return (row+col)%2 == 0 },
	func(row, col int) bool { return row%2 == 0 },
	func(row, col int) bool { return col%3 == 0 },
	func(row, col int) bool { return (row+col)%3 == 0 },
	func(row, col int) bool { return (row/2+col/3)%2 == 0 },
	func(row, col int) bool { return row*col%2+row*col%3 == 0 },
	func(row, col int) bool { return (row*col%2+row*col%3)%2 == 0 },
	func(row, col int) bool { return ((row+col)%2+row*col%3)%2 == 0 },
}

// applyMask returns a copy of m with mask i XORed into every Data module.
func applyMask(m Matrix, v Version, i int) Matrix {
	w := v.Width()
	out := make(Matrix, w)
	fn := masks[i]
	for r := 0; r < w; r++ {
		out[r] = make([]bool, w)
		copy(out[r], m[r])
		for c := 0; c < w; c++ {
			if moduleType(v, r, c) == kindData && fn(r, c) {
				out[r][c] = !out[r][c]
			}
		}
	}
	return out
}

// formatGroupA and formatGroupB are the two redundant 15-position runs that
// carry format information, each indexed by bit number (0 = LSB). groupA
// wraps the top-left finder; groupB is split between row 8 beside the
// top-right finder (bits 0-7) and column 8 beside the bottom-left finder
// (bits 8-14, next to the always-dark module). The position (8, W) that a
// naive mirror of groupA would produce does not exist on the grid, so groupB
// follows the QR standard's actual layout instead of a literal reflection of
// groupA.
func formatGroupA() [15]position {
	return [15]position{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
}

func formatGroupB(w int) [15]position {
	return [15]position{
		{8, w - 1}, {8, w - 2}, {8, w - 3}, {8, w - 4}, {8, w - 5}, {8, w - 6}, {8, w - 7}, {8, w - 8},
		{w - 7, 8}, {w - 6, 8}, {w - 5, 8}, {w - 4, 8}, {w - 3, 8}, {w - 2, 8}, {w - 1, 8},
	}
}

// drawFormatInfo stamps both copies of the 15-bit format information for the
// given EC level and mask.
func drawFormatInfo(m Matrix, v Version, ec ECLevel, mask int) {
	w := v.Width()
	bits := formatEncodeMasked(ec, mask)
	a := formatGroupA()
	b := formatGroupB(w)
	for i := 0; i < 15; i++ {
		bit := (bits>>uint(i))&1 == 1
		m[a[i].row][a[i].col] = bit
		m[b[i].row][b[i].col] = bit
	}
}

// penaltyScore computes the total N1+N2+N3+N4 penalty for a finished
// matrix, following the four rules of the QR standard's mask-evaluation
// condition.
func penaltyScore(m Matrix) int {
	w := len(m)
	total := 0

	for r := 0; r < w; r++ {
		total += lineRunPenalty(rowView{m, r, w})
		total += lineFinderPenalty(rowView{m, r, w})
	}
	for c := 0; c < w; c++ {
		total += lineRunPenalty(colView{m, c, w})
		total += lineFinderPenalty(colView{m, c, w})
	}

	// N2: 2x2 blocks of a single color.
	for r := 0; r < w-1; r++ {
		for c := 0; c < w-1; c++ {
			v := m[r][c]
			if m[r][c+1] == v && m[r+1][c] == v && m[r+1][c+1] == v {
				total += 3
			}
		}
	}

	// N4: proportion of dark modules, in 5% steps away from 50%. Computed as
	// the smallest k >= 0 such that (45-5k)% <= dark/total <= (55+5k)%,
	// without rounding dark/total to a percentage first.
	dark := 0
	for r := 0; r < w; r++ {
		for c := 0; c < w; c++ {
			if m[r][c] {
				dark++
			}
		}
	}
	modules := w * w
	k := (abs(dark*20-modules*10)+modules-1)/modules - 1
	total += k * 10

	return total
}

// lineView abstracts over a matrix row or column so N1/N3 can share one
// implementation.
type lineView interface {
	at(i int) bool
	len() int
}

type rowView struct {
	m Matrix
	r int
	w int
}

func (v rowView) at(i int) bool { return v.m[v.r][i] }
func (v rowView) len() int      { return v.w }

type colView struct {
	m Matrix
	c int
	w int
}

func (v colView) at(i int) bool { return v.m[i][v.c] }
func (v colView) len() int      { return v.w }

// lineRunPenalty is N1: 3 + (run length - 5) for every run of 5 or more
// same-colored modules along the line.
func lineRunPenalty(line lineView) int {
	total := 0
	runLen := 1
	for i := 1; i < line.len(); i++ {
		if line.at(i) == line.at(i-1) {
			runLen++
			continue
		}
		if runLen >= 5 {
			total += 3 + (runLen - 5)
		}
		runLen = 1
	}
	if runLen >= 5 {
		total += 3 + (runLen - 5)
	}
	return total
}

// lineFinderPenalty is N3: 40 points for every 1:1:3:1:1 dark-light run
// pattern (a finder look-alike) found along the line, counted when a run of
// 4 light modules flanks it on either side (not necessarily both), including
// patterns that extend past either edge into an imaginary light border.
func lineFinderPenalty(line lineView) int {
	n := line.len()
	bits := make([]bool, n+8) // 4 light modules of padding on each side
	for i := 0; i < n; i++ {
		bits[i+4] = line.at(i)
	}

	total := 0
	pattern := []bool{true, false, true, true, true, false, true}
	for i := 0; i+7 <= len(bits); i++ {
		if matchesFinderPattern(bits[i:i+7], pattern) &&
			(allEqual(bits[max0(i-4):i], false) ||
				allEqual(bits[i+7:minInt(i+11, len(bits))], false)) {
			total += 40
		}
	}
	return total
}

func matchesFinderPattern(window, pattern []bool) bool {
	for i := range pattern {
		if window[i] != pattern[i] {
			return false
		}
	}
	return true
}

func allEqual(s []bool, v bool) bool {
	for _, x := range s {
		if x != v {
			return false
		}
	}
	return true
}

func max0(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// chooseMask draws format info for each of the 8 masks applied to m and
// returns the mask index with the lowest total penalty, along with its
// matrix.
func chooseMask(m Matrix, v Version, ec ECLevel) (int, Matrix) {
	best := -1
	var bestMatrix Matrix
	bestScore := 0

	for i := 0; i < 8; i++ {
		candidate := applyMask(m, v, i)
		drawFormatInfo(candidate, v, ec, i)
		score := penaltyScore(candidate)
		if best == -1 || score < bestScore {
			best, bestMatrix, bestScore = i, candidate, score
		}
	}

	return best, bestMatrix
}
