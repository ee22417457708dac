package accept

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByPrecedence(t *testing.T) {
	ranges := []Range{
		{Type: "*", Subtype: "*", Q: 1},
		{Type: "text", Subtype: "html", Q: 1},
		{Type: "application", Subtype: "*", Q: 1},
		{Type: "text", Subtype: "html", Parameters: []Param{{Name: "level", Value: "1"}}, Q: 1},
	}
	SortByPrecedence(ranges)

	require.Equal(t, "text", ranges[0].Type)
	require.Equal(t, "html", ranges[0].Subtype)
	require.Len(t, ranges[0].Parameters, 1, "most-parameters fully-specific range sorts first")

	require.Equal(t, "text", ranges[1].Type)
	require.Equal(t, "html", ranges[1].Subtype)
	require.Len(t, ranges[1].Parameters, 0)

	require.Equal(t, "application", ranges[2].Type)
	require.Equal(t, "*", ranges[2].Subtype)

	require.Equal(t, "*", ranges[3].Type)
	require.Equal(t, "*", ranges[3].Subtype)
}

func TestSortByPrecedenceStable(t *testing.T) {
	ranges := []Range{
		{Type: "a", Subtype: "b", Q: 1},
		{Type: "c", Subtype: "d", Q: 1},
	}
	SortByPrecedence(ranges)
	require.Equal(t, "a", ranges[0].Type, "equal score keeps original parse order")
	require.Equal(t, "c", ranges[1].Type)
}

func TestScoreMonotonicity(t *testing.T) {
	moreSpecific := Range{Type: "text", Subtype: "html", Parameters: []Param{{Name: "level", Value: "1"}}}
	lessSpecific := Range{Type: "text", Subtype: "html"}
	require.Greater(t, score(&moreSpecific), score(&lessSpecific))

	typeOnly := Range{Type: "text", Subtype: "*"}
	fullWildcard := Range{Type: "*", Subtype: "*"}
	require.Greater(t, score(&typeOnly), score(&fullWildcard))
}
