package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopherd/landlord/poker"
)

func cardsList(ss ...string) []poker.Cards {
	var ret []poker.Cards
	for _, s := range ss {
		ret = append(ret, poker.MustParseCards(s))
	}
	return ret
}

func TestEnumerateRepeats(t *testing.T) {
	block := poker.MustParseCards("3 3 4 4 4 4 5")
	require.Equal(t, cardsList("3", "5"), EnumerateRepeats(block, 1))
	require.Equal(t, cardsList("3 3", "4 4"), EnumerateRepeats(block, 2))
	require.Empty(t, EnumerateRepeats(block, 3))
	require.Equal(t, cardsList("4 4 4 4"), EnumerateRepeats(block, 4))
	require.Empty(t, EnumerateRepeats(block, 5))

	block = poker.MustParseCards("6 6 6 7 7 7")
	require.Equal(t, cardsList("6", "7"), EnumerateRepeats(block, 1))
	require.Equal(t, cardsList("6 6 6", "7 7 7"), EnumerateRepeats(block, 3))

	require.Panics(t, func() { EnumerateRepeats(block, 0) })
}

func TestEnumerateRuns(t *testing.T) {
	ranks := poker.MustParseCards("3 4 5 6 7 8")
	require.Equal(t, cardsList("3 4 5 6 7", "4 5 6 7 8"), EnumerateRuns(ranks, 1, 5))
	require.Equal(t, cardsList("3 4 5 6 7 8"), EnumerateRuns(ranks, 1, 6))
	require.Empty(t, EnumerateRuns(ranks, 1, 7))

	ranks = poker.MustParseCards("3 4 6 7 8")
	require.Equal(t, cardsList("6 6 7 7 8 8"), EnumerateRuns(ranks, 2, 3))
	require.Equal(t, cardsList("3 3 3 4 4 4", "6 6 6 7 7 7", "7 7 7 8 8 8"), EnumerateRuns(ranks, 3, 2))

	require.Panics(t, func() { EnumerateRuns(ranks, 1, -1) })
}

func TestCandidates(t *testing.T) {
	e := newEvaluator(DefaultOptions)
	actions := e.candidates(poker.MustParseCards("3 3 3 4 4 4 5 5 6 7"))
	for _, want := range cardsList("3", "5", "7", "3 3", "5 5", "3 3 3", "3 4 5 6 7", "3 3 4 4 5 5", "3 3 3 4 4 4") {
		require.Contains(t, actions, want)
	}
	for _, a := range actions {
		require.True(t, poker.Classify(a).IsValid(), "%v", a)
	}
}
