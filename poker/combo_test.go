package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		cards    string
		category Category
		value    Card
		run      int
	}{
		{"", Pass, InvalidCard, 0},
		{"3", Single, Card3, 1},
		{"G", Single, CardG1, 1},
		{"3 3", Pair, Card3, 1},
		{"2 2 2", Trio, Card2, 1},
		{"3 3 3 3", Bomb, Card3, 1},
		{"g G", Rocket, CardG1, 1},
		{"g g", Invalid, InvalidCard, 0},
		{"3 4", Invalid, InvalidCard, 0},
		{"3 3 3 6", TrioWithSingle, Card3, 1},
		{"6 6 6 7 7", TrioWithPair, Card6, 1},
		{"2 2 2 3", TrioWithSingle, Card2, 1},
		{"A A A 2", TrioWithSingle, CardA, 1},
		{"A A A g", TrioWithSingle, CardA, 1},
		{"A A A 2 g", Invalid, InvalidCard, 0},
		{"3 4 5 6 7", Straight, Card7, 5},
		{"10 J Q K A", Straight, CardA, 5},
		{"3 4 5 6 7 8 9 10 J Q K A", Straight, CardA, 12},
		{"3 4 5 6", Invalid, InvalidCard, 0},
		{"J Q K A 2", Invalid, InvalidCard, 0},
		{"A 2 3 4 5", Invalid, InvalidCard, 0},
		{"3 3 4 4 5 5", PairStraight, Card5, 3},
		{"3 3 4 4", Invalid, InvalidCard, 0},
		{"Q Q K K A A 2 2", Invalid, InvalidCard, 0},
		{"3 3 4 4 5 5 6", Invalid, InvalidCard, 0},
		{"3 3 3 4 4 4", Airplane, Card4, 2},
		{"3 3 3 5 5 5", Invalid, InvalidCard, 0},
		{"K K K A A A 2 2 2", Invalid, InvalidCard, 0},
		{"3 3 3 4 4 4 5 6", AirplaneWithSingles, Card4, 2},
		{"3 3 3 4 4 4 5 5", AirplaneWithSingles, Card4, 2},
		{"5 7 K K K A A A", AirplaneWithSingles, CardA, 2},
		{"3 3 3 4 4 4 g G", Invalid, InvalidCard, 0},
		{"3 3 3 4 4 4 5 5 6 6", AirplaneWithPairs, Card4, 2},
		{"3 3 3 4 4 4 5 6 7", Invalid, InvalidCard, 0},
		{"3 3 3 3 5 6", FourWithTwo, Card3, 1},
		{"3 3 3 3 5 5", FourWithTwo, Card3, 1},
		{"3 3 3 3 g G", Invalid, InvalidCard, 0},
		{"3 3 3 3 5 5 6 6", FourWithTwoPairs, Card3, 1},
		{"3 3 3 3 4 4 4 4", Invalid, InvalidCard, 0},
		{"3 3 3 3 4 4 4", Invalid, InvalidCard, 0},
		{"3 3 3 3 5", Invalid, InvalidCard, 0},
		{"3 3 3 3 3 4 5", Invalid, InvalidCard, 0},
		{"3 3 3 3 3 4 4 4", Invalid, InvalidCard, 0},
	} {
		t.Run(tc.cards, func(t *testing.T) {
			combo := Classify(MustParseCards(tc.cards))
			require.Equal(t, tc.category, combo.Category(), "category of %q", tc.cards)
			require.Equal(t, tc.value, combo.Value())
			if tc.category != Invalid && tc.category != Pass {
				require.Equal(t, tc.run, combo.RunLength())
			}
		})
	}
}

func TestClassifyUnsorted(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, s := range []string{"3 3 3 6", "5 7 K K K A A A", "3 4 5 6 7 8", "g G", "A A A 2 g"} {
		cards := MustParseCards(s)
		want := Classify(cards)
		shuffled := cards.Clone()
		for i := 0; i < 10; i++ {
			r.Shuffle(len(shuffled), shuffled.Swap)
			got := Classify(shuffled)
			require.Equal(t, want.Key(), got.Key())
			require.Equal(t, want.Cards(), got.Cards())
		}
	}
}

func TestComboKey(t *testing.T) {
	for _, tc := range []struct {
		cards string
		key   int
	}{
		{"3 3 3 6", 11301},
		{"6 6 6 7 7", 21304},
		{"5 7 K K K A A A", 12312},
		{"3", 1101},
		{"3 3 4 4 5 5", 3203},
		{"3 3 3 3 5 5 6 6", 21401},
		{"g G", RocketKey},
		{"3 4", InvalidKey},
		{"", PassKey},
	} {
		require.Equal(t, tc.key, Classify(MustParseCards(tc.cards)).Key(), tc.cards)
	}
}

func TestComboAccessors(t *testing.T) {
	combo := Classify(MustParseCards("3 3 3 4 4 4 5 5 6 6"))
	require.Equal(t, 3, combo.MainKind())
	require.Equal(t, TakePair, combo.TakeKind())
	require.Equal(t, 2, combo.TakeCount())
	require.Equal(t, 10, combo.Len())

	combo = Classify(MustParseCards("9 9 9 9 3 K"))
	require.Equal(t, 4, combo.MainKind())
	require.Equal(t, TakeSingle, combo.TakeKind())
	require.Equal(t, 2, combo.TakeCount())

	combo = Classify(MustParseCards("4 5 6 7 8"))
	require.Equal(t, 1, combo.MainKind())
	require.Equal(t, 0, combo.TakeCount())

	require.True(t, PassCombo().IsPass())
	require.True(t, PassCombo().IsValid())
	require.Equal(t, "{pass}", PassCombo().String())
	require.Equal(t, "{pair: 3 3}", Classify(MustParseCards("3 3")).String())
}

func TestGreaterThan(t *testing.T) {
	beats := func(a, b string) bool {
		return Classify(MustParseCards(a)).GreaterThan(Classify(MustParseCards(b)))
	}
	for _, tc := range []struct {
		a, b string
		want bool
	}{
		{"g G", "2 2 2 2", true},
		{"2 2 2 2", "g G", false},
		{"g G", "3", true},
		{"g G", "g G", false},
		{"4 4 4 4", "3 3 3 3", true},
		{"3 3 3 3", "4 4 4 4", false},
		{"3 3 3 3", "10 J Q K A", true},
		{"3 3 3 3", "2 2 2 5 5", true},
		{"10 J Q K A", "3 3 3 3", false},
		{"4 5 6 7 8", "3 4 5 6 7", true},
		{"3 4 5 6 7", "4 5 6 7 8", false},
		{"4 5 6 7 8 9", "3 4 5 6 7", false},
		{"2", "A", true},
		{"G", "g", true},
		{"g", "2", true},
		{"4 4 4 5", "3 3 3 6 6", false},
		{"4 4 4 5 5", "3 3 3 6 6", true},
		{"4 4 4 3", "3 3 3 K", true},
		{"4 4 4 4 5 6", "3 3 3 3 7 8", true},
		{"4 4 4 4 5 5 6 6", "3 3 3 3 7 8", false},
		{"3 3", "3 3", false},
		{"3 4", "3", false},
		{"3", "3 4", false},
		{"", "3", false},
		{"3", "", false},
	} {
		require.Equal(t, tc.want, beats(tc.a, tc.b), "%q > %q", tc.a, tc.b)
	}
}

func TestClassifyNeverPanics(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	deck := NewDeck()
	for i := 0; i < 2000; i++ {
		r.Shuffle(len(deck), deck.Swap)
		n := r.Intn(12)
		cards := deck[:n].Clone()
		require.NotPanics(t, func() {
			combo := Classify(cards)
			if combo.IsValid() && !combo.IsPass() {
				require.False(t, combo.GreaterThan(combo))
			}
		})
	}
}
