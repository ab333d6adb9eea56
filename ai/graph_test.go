package ai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopherd/landlord/poker"
)

func TestWriteDot(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "hand.dot")
	hand := poker.MustParseCards("3 4 5 6 7 9 9 2 g")
	require.NoError(t, WriteDot(filename, "hand", hand, DefaultOptions))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "digraph hand {")
	require.Contains(t, content, "hand: "+viewOf(hand))
	require.Contains(t, content, "block: 3 4 5 6 7")
	require.Contains(t, content, "[color=red]")
}

func TestWriteDotError(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", "hand.dot")
	err := WriteDot(filename, "hand", poker.MustParseCards("3 3"), DefaultOptions)
	require.Error(t, err)
}
