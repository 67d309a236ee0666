package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="root">Hello <b>big <i>wide</i></b> world<!-- skipped --></div>`,
	))
	require.NoError(t, err)

	root := doc.Find("#root").Nodes[0]
	require.Equal(t, "Hello big wide world", GetText(root))
	require.Equal(t, "", GetText(nil))
}

func TestFirstText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<ul>
			<li><cite>  first  </cite></li>
			<li><cite>second</cite></li>
		</ul>
	`))
	require.NoError(t, err)

	text, ok := FirstText(doc.Selection, "cite")
	require.True(t, ok)
	require.Equal(t, "first", text)

	_, ok = FirstText(doc.Selection, "p")
	require.False(t, ok)
}

func TestTrimAffix(t *testing.T) {
	table := []struct {
		input    string
		prefix   string
		suffix   string
		expected string
	}{
		{input: "  Posted by: Adalman ", prefix: "Posted by: ", expected: "Adalman"},
		{input: "Adalman", prefix: "Posted by: ", expected: "Adalman"},
		{input: "Should it? | Debate.org", suffix: " | Debate.org", expected: "Should it?"},
		{input: "\n Should it? | Debate.org \n", suffix: " | Debate.org", expected: "Should it?"},
		{input: "Debate.org | Should it?", suffix: " | Debate.org", expected: "Debate.org | Should it?"},
		{input: "   ", prefix: "x", suffix: "y", expected: ""},
	}

	for _, row := range table {
		require.Equal(t, row.expected, TrimAffix(row.input, row.prefix, row.suffix))
	}
}
