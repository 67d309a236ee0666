package debateorg

import (
	"bytes"
	"context"
	"fmt"

	"debateservice/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	titleSuffix  = " | Debate.org"
	authorPrefix = "Posted by: "

	yesPercentSelector = "span.yes-text"
	noPercentSelector  = "span.no-text"
	yesArgSelector     = "div#yes-arguments li.hasData"
	noArgSelector      = "div#no-arguments li.hasData"
)

// Extract scrapes an Opinion out of the markup of an opinion page.
//
// It either returns every field or fails with an error wrapping ErrParse,
// a page with no arguments is still a valid opinion.
func Extract(ctx context.Context, markup []byte) (Opinion, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	opinion, err := extract(markup)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract opinion")
		return Opinion{}, err
	}

	span.SetAttributes(
		attribute.String("name", opinion.Name),
		attribute.Int("arguments", len(opinion.Arguments)),
	)
	return opinion, nil
}

func extract(markup []byte) (Opinion, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return Opinion{}, fmt.Errorf("%w: read html: %w", ErrParse, err)
	}

	title, ok := htmlutil.FirstText(doc.Selection, "title")
	if !ok {
		return Opinion{}, fmt.Errorf("%w: missing title", ErrParse)
	}
	if title == "" {
		return Opinion{}, fmt.Errorf("%w: empty title", ErrParse)
	}
	yesPercent, ok := htmlutil.FirstText(doc.Selection, yesPercentSelector)
	if !ok {
		return Opinion{}, fmt.Errorf("%w: missing %s", ErrParse, yesPercentSelector)
	}
	noPercent, ok := htmlutil.FirstText(doc.Selection, noPercentSelector)
	if !ok {
		return Opinion{}, fmt.Errorf("%w: missing %s", ErrParse, noPercentSelector)
	}

	arguments := []Argument{}
	for _, selector := range []string{yesArgSelector, noArgSelector} {
		items := doc.Find(selector)
		for i := range items.Nodes {
			arg, err := extractArgument(items.Eq(i))
			if err != nil {
				return Opinion{}, fmt.Errorf("%s #%d: %w", selector, i, err)
			}
			arguments = append(arguments, arg)
		}
	}

	return Opinion{
		Name:       htmlutil.TrimAffix(title, "", titleSuffix),
		YesPercent: yesPercent,
		NoPercent:  noPercent,
		Arguments:  arguments,
	}, nil
}

func extractArgument(item *goquery.Selection) (Argument, error) {
	cite, ok := htmlutil.FirstText(item, "cite")
	if !ok {
		return Argument{}, fmt.Errorf("%w: argument has no cite", ErrParse)
	}
	description, ok := htmlutil.FirstText(item, "p")
	if !ok {
		return Argument{}, fmt.Errorf("%w: argument has no paragraph", ErrParse)
	}

	author := htmlutil.TrimAffix(cite, authorPrefix, "")
	if author == "" {
		return Argument{}, fmt.Errorf("%w: argument has an empty author", ErrParse)
	}
	if description == "" {
		return Argument{}, fmt.Errorf("%w: argument has an empty description", ErrParse)
	}

	return Argument{Author: author, Description: description}, nil
}
