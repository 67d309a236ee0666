package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under node, in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FirstText returns the trimmed text of the first node matched by selector
// under sel. ok is false when nothing matches.
func FirstText(sel *goquery.Selection, selector string) (text string, ok bool) {
	found := sel.Find(selector)
	if len(found.Nodes) == 0 {
		return "", false
	}
	return strings.TrimSpace(GetText(found.Nodes[0])), true
}

// TrimAffix trims whitespace, removes prefix and suffix when present and
// trims whatever whitespace that exposes.
func TrimAffix(s, prefix, suffix string) string {
	s = strings.TrimSpace(s)
	if prefix != "" {
		s = strings.TrimPrefix(s, prefix)
	}
	if suffix != "" {
		s = strings.TrimSuffix(s, suffix)
	}
	return strings.TrimSpace(s)
}
