package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMaskOnlyTouchesDataModules(t *testing.T) {
	v := Version(3)
	blank := makeBlank(v)
	masked := applyMask(blank, v, 0)

	w := v.Width()
	for r := 0; r < w; r++ {
		for c := 0; c < w; c++ {
			if moduleType(v, r, c) != kindData {
				assert.Equal(t, blank[r][c], masked[r][c], "reserved module (%d,%d) changed", r, c)
			}
		}
	}
}

func TestApplyMaskIsInvolution(t *testing.T) {
	v := Version(2)
	blank := makeBlank(v)
	once := applyMask(blank, v, 5)
	twice := applyMask(once, v, 5)
	assert.Equal(t, blank, twice)
}

func TestDrawFormatInfoBothCopiesMatch(t *testing.T) {
	v := Version(1)
	m := makeBlank(v)
	drawFormatInfo(m, v, Quartile, 2)

	w := v.Width()
	bits := formatEncodeMasked(Quartile, 2)
	a := formatGroupA()
	b := formatGroupB(w)
	for i := 0; i < 15; i++ {
		want := (bits>>uint(i))&1 == 1
		assert.Equal(t, want, m[a[i].row][a[i].col])
		assert.Equal(t, want, m[b[i].row][b[i].col])
	}
}

func TestChooseMaskPicksLowestPenalty(t *testing.T) {
	v := Version(2)
	blank := makeBlank(v)
	best, bestMatrix := chooseMask(blank, v, Medium)
	assert.GreaterOrEqual(t, best, 0)
	assert.LessOrEqual(t, best, 7)

	bestScore := penaltyScore(bestMatrix)
	for i := 0; i < 8; i++ {
		candidate := applyMask(blank, v, i)
		drawFormatInfo(candidate, v, Medium, i)
		assert.LessOrEqual(t, bestScore, penaltyScore(candidate))
	}
}

func TestPenaltyScoreUniformMatrixIsHighN1AndN4(t *testing.T) {
	w := Version(1).Width()
	m := make(Matrix, w)
	for i := range m {
		m[i] = make([]bool, w)
	}
	// All light: maximal N1 run penalty and a 0% dark-module N4 penalty.
	score := penaltyScore(m)
	assert.Greater(t, score, 0)
}
