package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopherd/landlord/poker"
)

func combo(s string) poker.Combo {
	return poker.Classify(poker.MustParseCards(s))
}

func TestDecomposeForFollowJokerSteal(t *testing.T) {
	hand := poker.MustParseCards("4 5 6 6 2 2 g G")
	fr := DecomposeForFollow(hand, combo("3"), DefaultOptions)

	require.Contains(t, fr.Actions, poker.Cards{poker.CardG0})
	require.Equal(t, cardsList("g G"), fr.Bombs)
	for _, b := range fr.Bombs {
		require.NotEqual(t, 4, len(b))
	}
	require.Equal(t, cardsList("4", "5", "6", "2", "g", "G"), fr.Actions)
	require.Equal(t, []int{0, 0, 1, 1, 1, 1}, fr.Deltas)
	require.Equal(t, 0, fr.MinDelta)
	require.Equal(t, poker.Cards{poker.CardG1}, fr.Max)
}

func TestDecomposeForFollowPair(t *testing.T) {
	hand := poker.MustParseCards("4 4 4 5 5 9 9 9 9 2 2")
	fr := DecomposeForFollow(hand, combo("3 3"), DefaultOptions)

	require.Equal(t, cardsList("9 9 9 9"), fr.Bombs)
	require.Equal(t, cardsList("5 5", "2 2", "4 4", "9 9"), fr.Actions)
	require.Equal(t, []int{0, 0, 1, 9997}, fr.Deltas)
	require.Equal(t, 0, fr.MinDelta)
	require.Equal(t, cardsList("2 2")[0], fr.Max)
}

func TestDecomposeForFollowTrioWithSingle(t *testing.T) {
	hand := poker.MustParseCards("5 5 5 7 8 8")
	fr := DecomposeForFollow(hand, combo("3 3 3 4"), DefaultOptions)

	require.Equal(t, cardsList("5 5 5 7"), fr.Actions)
	require.Equal(t, []int{0}, fr.Deltas)
	require.Empty(t, fr.Bombs)
	max := poker.Classify(fr.Max)
	require.Equal(t, poker.TrioWithSingle, max.Category())
	require.Equal(t, poker.Card5, max.Value())
	require.Equal(t, poker.MustParseCards("5 5 5 7"), fr.Max)
}

func TestDecomposeForFollowStraight(t *testing.T) {
	hand := poker.MustParseCards("4 5 6 7 8 9 K")
	fr := DecomposeForFollow(hand, combo("3 4 5 6 7"), DefaultOptions)

	require.Equal(t, cardsList("4 5 6 7 8", "5 6 7 8 9"), fr.Actions)
	require.Equal(t, cardsList("5 6 7 8 9")[0], fr.Max)
}

func TestDecomposeForFollowBombs(t *testing.T) {
	hand := poker.MustParseCards("3 3 3 3 4 4 4 4 5 g G")

	fr := DecomposeForFollow(hand, combo("3 3 3 3"), DefaultOptions)
	require.Equal(t, cardsList("4 4 4 4", "g G"), fr.Bombs)
	require.Empty(t, fr.Actions)
	require.Empty(t, fr.Max)

	fr = DecomposeForFollow(hand, combo("g G"), DefaultOptions)
	require.True(t, fr.Empty())

	fr = DecomposeForFollow(hand, combo("6"), DefaultOptions)
	require.Equal(t, cardsList("3 3 3 3", "4 4 4 4", "g G"), fr.Bombs)
}

func TestDecomposeForFollowNothing(t *testing.T) {
	hand := poker.MustParseCards("3 4 5")
	require.True(t, DecomposeForFollow(hand, combo("2"), DefaultOptions).Empty())
	require.True(t, DecomposeForFollow(hand, poker.PassCombo(), DefaultOptions).Empty())
	require.True(t, DecomposeForFollow(hand, combo("3 4"), DefaultOptions).Empty())
	require.True(t, DecomposeForFollow(nil, combo("3"), DefaultOptions).Empty())
}

func TestDecomposeForFollowLegality(t *testing.T) {
	hands := []string{
		"3 3 4 4 5 5 6 7 8 9 10 J J J Q Q K 2 G",
		"3 4 5 6 7 8 9 10 J Q K A 2 2 2 2 g",
		"3 3 3 4 4 4 5 5 5 6 6 7 7 8 8 9 9",
		"5 5 5 5 6 6 6 6 7 7 7 7 A A g G",
	}
	lasts := []string{
		"3", "3 3", "3 3 3", "3 3 3 4", "3 3 3 4 4", "3 4 5 6 7", "3 3 4 4 5 5",
		"3 3 3 4 4 4", "3 3 3 4 4 4 5 6", "3 3 3 4 4 4 5 5 6 6", "3 3 3 3 5 6", "3 3 3 3 5 5 6 6",
	}
	for _, h := range hands {
		hand := poker.MustParseCards(h)
		for _, l := range lasts {
			last := combo(l)
			fr := DecomposeForFollow(hand, last, DefaultOptions)
			require.Len(t, fr.Deltas, len(fr.Actions))
			for i, a := range fr.Actions {
				c := poker.Classify(a)
				require.True(t, c.GreaterThan(last), "%s / %s: %v", h, l, a)
				require.True(t, hand.Contains(a), "%s / %s: %v", h, l, a)
				if i > 0 {
					require.LessOrEqual(t, fr.Deltas[i-1], fr.Deltas[i])
				}
			}
			for _, b := range fr.Bombs {
				require.True(t, poker.Classify(b).GreaterThan(last))
			}
			if len(fr.Max) > 0 {
				require.True(t, poker.Classify(fr.Max).GreaterThan(last))
			}
			require.Equal(t, len(fr.Max) > 0, len(fr.Actions) > 0 || canBeatWithoutBombs(hand, last), "%s / %s", h, l)
		}
	}
}

func canBeatWithoutBombs(hand poker.Cards, last poker.Combo) bool {
	for _, c := range Match(hand, last, DefaultOptions, 0) {
		if !c.IsBombOrRocket() {
			return true
		}
	}
	return false
}
