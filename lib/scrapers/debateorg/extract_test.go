package debateorg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"debateservice/lib/telemetry"

	_ "embed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/opinion.html
var opinionPage []byte

var opinionPageExpected = Opinion{
	Name:       "Should drug users be put in prison?",
	YesPercent: "50% Say Yes",
	NoPercent:  "50% Say No",
	Arguments: []Argument{
		{Author: "Adalman", Description: "Specifically speaking about hard drugs."},
		{Author: "holla1755", Description: "I don't like the argument."},
		{Author: "ihatethisname", Description: "Drug users were in tough times."},
	},
}

// page renders a minimal opinion page around the given argument sections.
func page(title, yesSection, noSection string) string {
	return fmt.Sprintf(`<html><head><title>%s</title></head><body>
		<span class="yes-text">60%% Say Yes</span>
		<span class="no-text">40%% Say No</span>
		%s
		%s
	</body></html>`, title, yesSection, noSection)
}

func TestExtractFixture(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/debateorg")
	defer cleanup()

	opinion, err := Extract(context.Background(), opinionPage)
	require.NoError(t, err)

	diff := cmp.Diff(opinionPageExpected, opinion)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	_, err := Extract(context.Background(), []byte("<html></html>"))
	require.ErrorIs(t, err, ErrParse)
}

func TestExtractMissingRequiredElements(t *testing.T) {
	table := []struct {
		name   string
		markup string
	}{
		{
			name:   "no title",
			markup: `<html><body><span class="yes-text">1</span><span class="no-text">2</span></body></html>`,
		},
		{
			name:   "empty title",
			markup: page("", "", ""),
		},
		{
			name:   "blank title",
			markup: page(" \n ", "", ""),
		},
		{
			name:   "no yes percentage",
			markup: `<html><head><title>t</title></head><body><span class="no-text">2</span></body></html>`,
		},
		{
			name:   "no no percentage",
			markup: `<html><head><title>t</title></head><body><span class="yes-text">1</span></body></html>`,
		},
		{
			name:   "percentage on the wrong element",
			markup: `<html><head><title>t</title></head><body><div class="yes-text">1</div><span class="no-text">2</span></body></html>`,
		},
		{
			name: "argument without cite",
			markup: page("t",
				`<div id="yes-arguments"><ul><li class="hasData"><p>text</p></li></ul></div>`,
				"",
			),
		},
		{
			name: "argument without paragraph",
			markup: page("t",
				"",
				`<div id="no-arguments"><ul><li class="hasData"><cite>Posted by: someone</cite></li></ul></div>`,
			),
		},
		{
			name: "argument with blank author",
			markup: page("t",
				`<div id="yes-arguments"><ul><li class="hasData"><p>text</p><cite> 
 </cite></li></ul></div>`,
				"",
			),
		},
		{
			name: "argument with blank description",
			markup: page("t",
				`<div id="yes-arguments"><ul><li class="hasData"><p>  </p><cite>someone</cite></li></ul></div>`,
				"",
			),
		},
	}

	for _, row := range table {
		t.Run(row.name, func(t *testing.T) {
			opinion, err := Extract(context.Background(), []byte(row.markup))
			require.ErrorIs(t, err, ErrParse)
			require.Equal(t, Opinion{}, opinion)
		})
	}
}

func TestExtractNoArguments(t *testing.T) {
	markup := page("Is water wet? | Debate.org",
		`<div id="yes-arguments"><ul><li class="placeholder"></li></ul></div>`,
		`<div id="no-arguments"><ul></ul></div>`,
	)

	opinion, err := Extract(context.Background(), []byte(markup))
	require.NoError(t, err)
	require.Equal(t, "Is water wet?", opinion.Name)
	require.Equal(t, "60% Say Yes", opinion.YesPercent)
	require.Equal(t, "40% Say No", opinion.NoPercent)
	require.NotNil(t, opinion.Arguments)
	require.Empty(t, opinion.Arguments)

	encoded, err := json.Marshal(opinion)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"arguments":[]`)
}

func TestExtractOrdersYesBeforeNo(t *testing.T) {
	// the no section comes first in the document
	markup := page("t",
		`<div id="no-arguments"><ul>
			<li class="hasData"><p>no 1</p><cite>n1</cite></li>
			<li class="hasData"><p>no 2</p><cite>n2</cite></li>
		</ul></div>`,
		`<div id="yes-arguments"><ul>
			<li class="hasData"><p>yes 1</p><cite>y1</cite></li>
		</ul></div>`,
	)

	opinion, err := Extract(context.Background(), []byte(markup))
	require.NoError(t, err)
	require.Equal(t, []Argument{
		{Author: "y1", Description: "yes 1"},
		{Author: "n1", Description: "no 1"},
		{Author: "n2", Description: "no 2"},
	}, opinion.Arguments)
}

func TestExtractArgumentCount(t *testing.T) {
	for _, counts := range [][2]int{{0, 0}, {1, 0}, {0, 3}, {4, 2}} {
		var yes, no strings.Builder
		for i := 0; i < counts[0]; i++ {
			fmt.Fprintf(&yes, `<li class="hasData"><p>yes %d</p><cite>Posted by: yes-author-%d</cite></li><li></li>`, i, i)
		}
		for i := 0; i < counts[1]; i++ {
			fmt.Fprintf(&no, `<li class="hasData"><p>no %d</p><cite>Posted by: no-author-%d</cite></li>`, i, i)
		}
		markup := page("t",
			`<div id="yes-arguments"><ul>`+yes.String()+`</ul></div>`,
			`<div id="no-arguments"><ul>`+no.String()+`</ul></div>`,
		)

		opinion, err := Extract(context.Background(), []byte(markup))
		require.NoError(t, err)
		require.Len(t, opinion.Arguments, counts[0]+counts[1])
		for i, arg := range opinion.Arguments {
			if i < counts[0] {
				require.Equal(t, fmt.Sprintf("yes-author-%d", i), arg.Author)
				continue
			}
			require.Equal(t, fmt.Sprintf("no-author-%d", i-counts[0]), arg.Author)
		}
	}
}

func TestExtractHasDataOutsideSections(t *testing.T) {
	markup := page("t",
		`<div id="sidebar"><ul><li class="hasData"><p>ad</p></li></ul></div>`,
		`<div id="no-arguments"><ul><li class="hasData"><p>kept</p><cite>Posted by: kept</cite></li></ul></div>`,
	)

	opinion, err := Extract(context.Background(), []byte(markup))
	require.NoError(t, err)
	require.Equal(t, []Argument{{Author: "kept", Description: "kept"}}, opinion.Arguments)
}

func TestExtractArgumentAuthor(t *testing.T) {
	table := []struct {
		cite     string
		expected string
	}{
		{cite: "Posted by: Adalman", expected: "Adalman"},
		{cite: "  Posted by: Adalman  ", expected: "Adalman"},
		{cite: "Adalman", expected: "Adalman"},
		{cite: "Anonymous Posted by: someone", expected: "Anonymous Posted by: someone"},
	}

	for _, row := range table {
		markup := page("t",
			fmt.Sprintf(`<div id="yes-arguments"><ul><li class="hasData"><p>d</p><cite>%s</cite></li></ul></div>`, row.cite),
			"",
		)
		opinion, err := Extract(context.Background(), []byte(markup))
		require.NoError(t, err)
		require.Equal(t, row.expected, opinion.Arguments[0].Author)
	}
}

func TestExtractTitle(t *testing.T) {
	table := []struct {
		title    string
		expected string
	}{
		{title: "Should drug users be put in prison? | Debate.org", expected: "Should drug users be put in prison?"},
		{title: "  Plain title  ", expected: "Plain title"},
	}

	for _, row := range table {
		opinion, err := Extract(context.Background(), []byte(page(row.title, "", "")))
		require.NoError(t, err)
		require.Equal(t, row.expected, opinion.Name)
	}
}

func TestExtractMalformedMarkup(t *testing.T) {
	// unclosed tags are repaired by the html5 parser
	markup := `<html><head><title>Unclosed | Debate.org</title><body>
		<span class="yes-text">1% Say Yes
		<span class="no-text">99% Say No
		<div id="yes-arguments"><ul><li class="hasData"><p>first<cite>Posted by: a</cite>`

	opinion, err := Extract(context.Background(), []byte(markup))
	require.NoError(t, err)
	require.Equal(t, "Unclosed", opinion.Name)
	require.Len(t, opinion.Arguments, 1)
	require.Equal(t, "a", opinion.Arguments[0].Author)
}
