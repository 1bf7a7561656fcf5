package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := Languages()
	require.Len(t, langs, 10)
	require.IsIncreasing(t, langs)
	require.Contains(t, langs, "Spanish")
}

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		name   string
		suffix string
	}{
		{"Spanish", "Spanish", "ES"},
		{"spanish", "Spanish", "ES"},
		{"ES", "Spanish", "ES"},
		{"es", "Spanish", "ES"},
		{"Japanese", "Japanese", "JP"},
		{"jp", "Japanese", "JP"},
	}
	for _, tt := range tests {
		name, suffix, err := ResolveLanguage(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.name, name)
		require.Equal(t, tt.suffix, suffix)
	}
}

func TestResolveLanguage_Unknown(t *testing.T) {
	t.Parallel()

	_, _, err := ResolveLanguage("Klingon")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported target language "Klingon"`)
}
