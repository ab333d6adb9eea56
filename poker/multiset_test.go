package poker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitByEqualRank(t *testing.T) {
	b, maxCount, value := SplitByEqualRank(MustParseCards("3 3 5 6 6 6 7 7 7 7 9"))
	require.Equal(t, Cards{Card5, Card9}, b[1])
	require.Equal(t, Cards{Card3}, b[2])
	require.Equal(t, Cards{Card6}, b[3])
	require.Equal(t, Cards{Card7}, b[4])
	require.Equal(t, 4, maxCount)
	require.Equal(t, Card7, value)

	b, maxCount, value = SplitByEqualRank(MustParseCards("4 4 9 9 K"))
	require.Equal(t, 2, maxCount)
	require.Equal(t, Card9, value)
	require.Empty(t, b[3])

	b, maxCount, value = SplitByEqualRank(nil)
	require.Equal(t, Buckets{}, b)
	require.Equal(t, 0, maxCount)
	require.Equal(t, InvalidCard, value)
}

func TestSuffixBuckets(t *testing.T) {
	b, maxCount, _ := SuffixBuckets(MustParseCards("3 4 4 5 5 5 6 6 6 6"))
	require.Equal(t, Cards{Card3, Card4, Card5}, b[1])
	require.Equal(t, Cards{Card4, Card5}, b[2])
	require.Equal(t, Cards{Card5}, b[3])
	require.Equal(t, Cards{Card6}, b[4])
	require.Equal(t, 4, maxCount)
}

func TestPartitionLowerThanTwo(t *testing.T) {
	low, twos, jokers := PartitionLowerThanTwo(MustParseCards("3 A 2 2 g"))
	require.Equal(t, Cards{Card3, CardA}, low)
	require.Equal(t, Cards{Card2, Card2}, twos)
	require.Equal(t, Cards{CardG0}, jokers)

	low = append(low, Card4)
	require.Equal(t, Cards{Card2, Card2}, twos)

	low, twos, jokers = PartitionLowerThanTwo(MustParseCards("g G"))
	require.Empty(t, low)
	require.Empty(t, twos)
	require.Len(t, jokers, 2)
}

func TestSplitIntoRuns(t *testing.T) {
	runs := SplitIntoRuns(MustParseCards("4 4 5 6 8"))
	require.Equal(t, []Cards{{Card4, Card4, Card5, Card6}, {Card8}}, runs)

	runs = SplitIntoRuns(MustParseCards("3 5 7 7 9"))
	require.Len(t, runs, 4)

	require.Nil(t, SplitIntoRuns(nil))
}

func TestIsConsecutive(t *testing.T) {
	require.True(t, IsConsecutive(MustParseCards("10 J Q K A"), 5))
	require.True(t, IsConsecutive(MustParseCards("3 4"), 2))
	require.False(t, IsConsecutive(MustParseCards("3 4"), 3))
	require.False(t, IsConsecutive(MustParseCards("J Q K A 2"), 5))
	require.False(t, IsConsecutive(MustParseCards("3 4 6"), 2))
	require.False(t, IsConsecutive(nil, 0))
}
