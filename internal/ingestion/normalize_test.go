package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
}

func TestNormalizeText_LowercasesAndCollapsesWhitespace(t *testing.T) {
	got := NormalizeText("  Senior   Software\tEngineer \n Python,  Go ")
	assert.Equal(t, "senior software engineer python, go", got)
}

func TestNormalizeText_StripsControlCharacters(t *testing.T) {
	got := NormalizeText("Python\x00\x07 and\x1b Go")
	assert.Equal(t, "python and go", got)
}

func TestNormalizeText_JoinsHyphenationAtLineBreaks(t *testing.T) {
	got := NormalizeText("built distrib-\nuted systems")
	assert.Equal(t, "built distributed systems", got)
}

func TestNormalizeText_KeepsInWordHyphens(t *testing.T) {
	got := NormalizeText("full-stack developer")
	assert.Equal(t, "full-stack developer", got)
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"  Senior   Software\tEngineer ",
		"built distrib-\nuted systems",
		"Python\r\nGo\rSQL",
		"",
	}
	for _, input := range inputs {
		once := NormalizeText(input)
		assert.Equal(t, once, NormalizeText(once), "input %q", input)
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Jane Doe", FirstLine("\n\n  Jane Doe  \nSoftware Engineer"))
	assert.Equal(t, "", FirstLine("   \n\t\n"))
}
