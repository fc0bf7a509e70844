package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveField(t *testing.T) {
	columns := []string{"Miles_Per_Gallon", "Horsepower", "Origin"}

	tests := []struct {
		name      string
		requested string
		expected  string
	}{
		{"exact", "Horsepower", "Horsepower"},
		{"lowercase", "horsepower", "Horsepower"},
		{"uppercase", "ORIGIN", "Origin"},
		{"spaces for underscores", "miles per gallon", "Miles_Per_Gallon"},
		{"no separators", "MilesPerGallon", "Miles_Per_Gallon"},
		{"surrounding whitespace", "  Origin  ", "Origin"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveField(tc.requested, columns)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolveField_NotFound(t *testing.T) {
	columns := []string{"Miles_Per_Gallon", "Origin"}

	_, err := ResolveField("mpg", columns)
	require.Error(t, err)

	var notFound *FieldNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "mpg", notFound.Requested)
	// Available columns are reported verbatim so the caller can pick
	// one of them next time.
	assert.Equal(t, columns, notFound.Available)
	assert.Contains(t, err.Error(), "Miles_Per_Gallon, Origin")
}

func TestResolveField_EmptyRequestNeverMatches(t *testing.T) {
	columns := []string{"a", "b"}

	_, err := ResolveField("", columns)
	assert.Error(t, err)

	// A request that normalizes to nothing must not match anything.
	_, err = ResolveField("___", columns)
	assert.Error(t, err)

	_, err = ResolveField("   ", columns)
	assert.Error(t, err)
}

func TestResolveField_NoColumns(t *testing.T) {
	_, err := ResolveField("anything", nil)
	assert.Error(t, err)
}
