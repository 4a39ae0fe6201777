package treeview

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xbst/lib/tree"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func TestLeveledList(t *testing.T) {
	bst := tree.NewBSTree[int]()
	for _, k := range []int{50, 30, 70, 20, 40, 80} {
		bst.Insert(k)
	}
	list := LeveledList[int](bst)
	require.Equal(t, pterm.LeveledList{
		{Level: 0, Text: "50"},
		{Level: 1, Text: "L 30"},
		{Level: 2, Text: "L 20"},
		{Level: 2, Text: "R 40"},
		{Level: 1, Text: "R 70"},
		{Level: 2, Text: "R 80"},
	}, list)

	require.Empty(t, LeveledList[int](nil))
	require.Empty(t, LeveledList[int](tree.NewBSTree[int]()))
}

func TestRender(t *testing.T) {
	out, err := Render[int](tree.NewBSTree[int]())
	require.NoError(t, err)
	require.Equal(t, "", out)

	bst := tree.NewBSTree[string]()
	for _, k := range []string{"m", "c", "x", "a", "e"} {
		bst.Insert(k)
	}
	out, err = Render[string](bst)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for i, text := range []string{"m", "L c", "L a", "R e", "R x"} {
		require.True(t, strings.HasSuffix(strings.TrimSpace(lines[i]), text), lines[i])
	}
}

func TestRender_DegeneratedChain(t *testing.T) {
	bst := tree.NewBSTree[int]()
	for i := 0; i < 64; i++ {
		bst.Insert(i)
	}
	out, err := Render[int](bst)
	require.NoError(t, err)
	require.Contains(t, out, "R 63")
	require.Equal(t, 64, strings.Count(out, "\n"))
}
