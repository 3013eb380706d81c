// ABOUTME: HTML utilities for turning provider markup into plain text
// ABOUTME: Parses fragments with goquery so tags, scripts and entities are handled properly

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpaces(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpaces(fragment)
	}

	doc.Find("script, style, noscript").Remove()
	// keep block and line boundaries from gluing words together
	for _, n := range doc.Find("br, p, div, li").Nodes {
		if n.Parent != nil {
			n.Parent.InsertBefore(&xhtml.Node{Type: xhtml.TextNode, Data: " "}, n.NextSibling)
		}
	}

	return collapseSpaces(doc.Text())
}

// collapseSpaces trims text and replaces runs of whitespace with a single space
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
