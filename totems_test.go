package totems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

func TestSolveLevelOneSingleI(t *testing.T) {
	s := New()
	defer s.Close()

	question := Question{Totems: []TotemQuestion{{Shape: I}}}
	answer, err := s.Solve(question)
	require.NoError(t, err)
	require.Len(t, answer.Totems, 1)
	assert.Equal(t, I, answer.Totems[0].Shape)
	assert.Len(t, answer.Totems[0].Coordinates, 4)
}

func TestSolveLevelThreeFourShapesCoverA4x4Board(t *testing.T) {
	s := New()
	defer s.Close()

	question := Question{Totems: []TotemQuestion{{Shape: I}, {Shape: O}, {Shape: J}, {Shape: L}}}
	answer, err := s.Solve(question)
	require.NoError(t, err)
	require.Len(t, answer.Totems, 4)

	covered := map[Coordinate]bool{}
	for _, placed := range answer.Totems {
		for _, c := range placed.Coordinates {
			assert.True(t, c.X < 4 && c.Y < 4, "cell %v outside the 4x4 board", c)
			assert.False(t, covered[c], "cell %v covered twice", c)
			covered[c] = true
		}
	}
	assert.Len(t, covered, 16)
}

func TestSolveRejectsEmptyQuestion(t *testing.T) {
	s := New()
	defer s.Close()

	_, err := s.Solve(Question{})
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestSolveRejectsMalformedShapeTag(t *testing.T) {
	s := New()
	defer s.Close()

	question := Question{Totems: []TotemQuestion{{Shape: Shape(99)}}}
	_, err := s.Solve(question)
	assert.ErrorIs(t, err, ErrMalformedQuestion)
}

func TestTrySolveSingleBoxSize(t *testing.T) {
	s := New()
	defer s.Close()

	answer, ok := s.TrySolve(1, 4, [totem.Count]int{1, 0, 0, 0, 0, 0, 0})
	require.True(t, ok)
	require.Len(t, answer.Totems, 1)
}

func TestTrySolveReportsFailureWhenBoxTooSmall(t *testing.T) {
	s := New()
	defer s.Close()

	var bag [totem.Count]int
	bag[I] = 3
	_, ok := s.TrySolve(2, 2, bag)
	assert.False(t, ok)
}

func TestGreedyStochasticBackendSolves32RandomTotemsReliably(t *testing.T) {
	s := New()
	defer s.Close()

	shapes := []Shape{I, I, I, I, I, I, I, I, J, J, J, J, O, O, O, O, T, T, T, T, L, L, L, L, S, S, Z, Z, I, O, T, L}
	var bag [totem.Count]int
	for _, sh := range shapes {
		bag[sh]++
	}

	// 12x12 is the top-scoring box for 32 totems; 32 > 8 and not a perfect
	// fit, so TrySolve routes it to the greedy backend.
	successes := 0
	for i := 0; i < 10; i++ {
		if _, ok := s.TrySolve(12, 12, bag); ok {
			successes++
		}
	}
	assert.GreaterOrEqual(t, successes, 9)
}
