package tagger

import (
	"strings"

	"golang.org/x/net/html"
)

func looksLikeHTML(text string) bool {
	open := strings.IndexByte(text, '<')
	return open >= 0 && strings.IndexByte(text[open:], '>') > 0
}

// PlainText drops markup, scripts and styles. Non-HTML text is returned as is.
func PlainText(text string) string {
	if !looksLikeHTML(text) {
		return text
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if chunk := strings.TrimSpace(n.Data); chunk != "" {
				parts = append(parts, chunk)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " ")
}
