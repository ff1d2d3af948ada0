package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTMLRendersBasicMarkdown(t *testing.T) {
	out, err := ToHTML("# Title\n\nsome **bold** text")
	assert.NoError(t, err)
	assert.Contains(t, out, "Title</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestToHTMLStripsScriptTags(t *testing.T) {
	out, err := ToHTML("hello <script>alert('x')</script> world")
	assert.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hello")
}

func TestToHTMLKeepsTables(t *testing.T) {
	out, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestToHTMLIsDeterministic(t *testing.T) {
	src := "## Heading\n\n- one\n- two\n\n[link](https://example.com)"
	first, err := ToHTML(src)
	assert.NoError(t, err)
	second, err := ToHTML(src)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
