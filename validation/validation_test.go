package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidQuestion_Accepts(t *testing.T) {
	questions := []string{
		"What is the average horsepower?",
		"mean MPG by origin",
		"Show me a bar chart of sales per region",
		"Is there a correlation between horsepower and weight?",
		"how many cars are from Japan",
		"top 5 regions by total revenue in 2023",
	}

	for _, q := range questions {
		assert.True(t, IsValidQuestion(q), "question %q should be accepted", q)
	}
}

func TestIsValidQuestion_SingleWord(t *testing.T) {
	// A lone word passes only when it looks like a real word.
	assert.True(t, IsValidQuestion("columns"))
	assert.False(t, IsValidQuestion("ok"))
	assert.False(t, IsValidQuestion("zzz"))
}

func TestIsValidQuestion_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too short", "ab"},
		{"too long", strings.Repeat("what is the mean ", 1000)},
		{"punctuation mash", "?!?! ...%%%"},
		{"digits only", "123456 7890"},
		{"keyboard mash run", "asdffff ghjkl"},
		{"repeated character", "aaaaaaaaaa"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsValidQuestion(tc.message))
		})
	}
}

func TestCheckUploadFile(t *testing.T) {
	require.NoError(t, CheckUploadFile("cars.csv", 1024, 1<<20))
	require.NoError(t, CheckUploadFile("cars.tsv", 1024, 1<<20))
	// Extension matching is case-insensitive.
	require.NoError(t, CheckUploadFile("CARS.CSV", 1024, 1<<20))
}

func TestCheckUploadFile_RejectsUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"cars.xlsx", "cars.json", "cars", "cars.csv.exe"} {
		err := CheckUploadFile(name, 1024, 1<<20)
		require.Error(t, err, "file %q should be rejected", name)
		assert.Contains(t, err.Error(), "unsupported file type")
	}
}

func TestCheckUploadFile_RejectsEmptyFile(t *testing.T) {
	err := CheckUploadFile("cars.csv", 0, 1<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestCheckUploadFile_RejectsOversizedFile(t *testing.T) {
	err := CheckUploadFile("cars.csv", 2048, 1024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestCheckUploadFile_NoLimitWhenMaxIsZero(t *testing.T) {
	assert.NoError(t, CheckUploadFile("cars.csv", 1<<30, 0))
}
