package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	got := Digest([]string{
		"application/json",
		"application/json;charset=utf-8",
		"text/html",
	})
	require.Len(t, got, 3)

	require.Equal(t, Type{Type: "application", Subtype: "json", OriginalType: "application/json"}, got[0])

	require.Equal(t, "application", got[1].Type)
	require.Equal(t, "json", got[1].Subtype)
	require.Equal(t, map[string]string{"charset": "utf-8"}, got[1].Parameters)
	require.Equal(t, "application/json;charset=utf-8", got[1].OriginalType)

	require.Equal(t, "text", got[2].Type)
	require.Equal(t, "html", got[2].Subtype)
}

func TestDigestNeverWildcard(t *testing.T) {
	got := Digest([]string{"application/json"})
	for _, d := range got {
		require.NotEqual(t, "*", d.Type, "server digests never carry a wildcard type")
	}
}

func TestDigestLaxOnMalformedEntry(t *testing.T) {
	got := Digest([]string{"justatoken"})
	require.Equal(t, "justatoken", got[0].Type)
	require.Equal(t, "", got[0].Subtype)
}
