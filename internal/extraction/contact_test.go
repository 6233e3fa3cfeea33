package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "Jane.Doe+jobs@example.co.uk",
		ExtractEmail("Contact: Jane.Doe+jobs@example.co.uk / 555-0100"))
	assert.Equal(t, "", ExtractEmail("no contact details"))
}

func TestExtractName_FirstNonEmptyLine(t *testing.T) {
	raw := "\n  Jane Doe\nSenior Software Engineer\njane@example.com"
	assert.Equal(t, "Jane Doe", ExtractName(raw))
}

func TestExtractName_Absent(t *testing.T) {
	assert.Equal(t, "", ExtractName(""))
	assert.Equal(t, "", ExtractName("  \n \t "))
}

func TestExtractName_RejectsParagraphFirstLine(t *testing.T) {
	raw := strings.Repeat("word ", 40) + "\nJane Doe"
	assert.Equal(t, "", ExtractName(raw))
}
