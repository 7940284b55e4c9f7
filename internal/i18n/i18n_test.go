package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	tr, err := New("")
	require.NoError(t, err)
	require.Equal(t, "en", tr.Language().String())
	require.Equal(t, "Butterfly", tr.T("food"))

	require.NoError(t, tr.SetLanguage("de"))
	require.Equal(t, "Schmetterling", tr.T("food"))
	require.Equal(t, "Käse", tr.T("drink"))

	require.Equal(t, "missing_id", tr.T("missing_id"))
}

func TestTranslator_Fallback(t *testing.T) {
	tr, err := New("de-AT")
	require.NoError(t, err)
	require.Equal(t, "Salat", tr.T("dessert"), "regional tags match their base catalog")

	require.NoError(t, tr.SetLanguage("ja"))
	require.Equal(t, "Lettuce", tr.T("dessert"))

	_, err = New("not a tag!")
	require.Error(t, err)
}

func TestTranslator_Next(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)
	require.Len(t, tr.Languages(), 2)

	require.Equal(t, "de", tr.Next().String())
	require.Equal(t, "Salat", tr.T("dessert"))
	require.Equal(t, "en", tr.Next().String())

	tr, err = New("de-AT")
	require.NoError(t, err)
	next := tr.Next()
	require.Equal(t, "en", next.String(), "regional tags cycle from their base catalog")
	require.Equal(t, next, tr.Language())
	require.Equal(t, "Lettuce", tr.T("dessert"))
}
