package goquery

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// startTagLines tokenizes raw and records, per tag name, the 1-based line
// of every start tag in source order.
func startTagLines(raw []byte) map[string][]int {
	lines := make(map[string][]int)
	z := html.NewTokenizer(bytes.NewReader(raw))
	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return lines
		}
		newlines := bytes.Count(z.Raw(), []byte("\n"))
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			lines[tag] = append(lines[tag], line)
		}
		line += newlines
	}
}

// indexPositions assigns every element below roots a position token. The
// k-th element of a tag maps to the k-th start tag of that name only when
// both counts agree; elements the parser implied (e.g. a missing <tbody>)
// break that correspondence and fall back to an ordinal "tag[k]".
func indexPositions(roots []*html.Node, lines map[string][]int) map[*html.Node]string {
	byTag := make(map[string][]*html.Node)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			byTag[n.Data] = append(byTag[n.Data], n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	positions := make(map[*html.Node]string)
	for tag, nodes := range byTag {
		tagLines := lines[tag]
		exact := len(tagLines) == len(nodes)
		for i, n := range nodes {
			if exact {
				positions[n] = fmt.Sprintf("line %d", tagLines[i])
			} else {
				positions[n] = fmt.Sprintf("%s[%d]", tag, i+1)
			}
		}
	}
	return positions
}
