package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// lineBreakTags end with a line break when rendered as text.
var lineBreakTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "td": true, "th": true,
	"table": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// renderText concatenates the text nodes below n. Unlike
// goquery.Selection.Text it keeps <br> and block boundaries as newlines,
// which multi-line cells such as vertical limits depend on.
func renderText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "br":
				b.WriteByte('\n')
				return
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && lineBreakTags[n.Data] {
			b.WriteByte('\n')
		}
	}
	walk(n)
	return b.String()
}
