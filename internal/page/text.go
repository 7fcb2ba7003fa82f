package page

import (
	"strings"

	"golang.org/x/net/html"
)

// skipped elements never contribute visible text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// blockBreaks holds the number of line breaks a block-level element puts
// around its content. Breaks from adjacent blocks collapse to the largest.
var blockBreaks = map[string]int{
	"address": 1, "article": 1, "aside": 1, "blockquote": 1, "dd": 1,
	"details": 1, "dialog": 1, "div": 1, "dl": 1, "dt": 1,
	"fieldset": 1, "figcaption": 1, "figure": 1, "footer": 1, "form": 1,
	"h1": 1, "h2": 1, "h3": 1, "h4": 1, "h5": 1, "h6": 1,
	"header": 1, "hr": 1, "li": 1, "main": 1, "nav": 1, "ol": 1,
	"pre": 1, "section": 1, "summary": 1, "table": 1, "tr": 1, "ul": 1,
	"p": 2,
}

// preformatted elements keep their whitespace as is.
var preformatted = map[string]bool{
	"pre":      true,
	"textarea": true,
	"listing":  true,
}

// InnerText returns the visible text of n the way a browser renders it as
// plain text. Whitespace inside <pre> is kept verbatim, elsewhere runs of
// whitespace collapse to one space. <br> becomes a newline, block elements
// start on their own line (<p> leaves a blank line) and hidden subtrees are
// left out. Breaks at the very start or end of the result are dropped.
func InnerText(n *html.Node) string {
	w := &textWriter{}
	w.walk(n, false, true)
	return w.sb.String()
}

type textWriter struct {
	sb strings.Builder
	// pending line breaks owed to a block boundary, written before the next
	// piece of text.
	pending int
	// space is a collapsed whitespace run waiting for the next inline text.
	space bool
}

func (w *textWriter) walk(n *html.Node, pre, root bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			w.write(n.Data)
		} else {
			w.inline(n.Data)
		}
		return
	case html.ElementNode:
		if skipped[n.Data] {
			return
		}
		if _, hidden := attr(n, "hidden"); hidden {
			return
		}
		if n.Data == "br" {
			w.newline()
			return
		}
		pre = pre || preformatted[n.Data]
	}

	breaks := 0
	if !root && n.Type == html.ElementNode {
		breaks = blockBreaks[n.Data]
	}
	w.block(breaks)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre, false)
	}
	w.block(breaks)
}

func (w *textWriter) block(breaks int) {
	if breaks == 0 {
		return
	}
	if w.sb.Len() > 0 && breaks > w.pending {
		w.pending = breaks
	}
	w.space = false
}

func (w *textWriter) newline() {
	w.flush()
	w.space = false
	w.sb.WriteByte('\n')
}

// inline writes s with its whitespace collapsed.
func (w *textWriter) inline(s string) {
	if s == "" {
		return
	}
	fields := strings.FieldsFunc(s, isCollapsible)
	if len(fields) == 0 {
		w.space = true
		return
	}
	if isCollapsible(rune(s[0])) {
		w.space = true
	}
	w.write(strings.Join(fields, " "))
	w.space = isCollapsible(rune(s[len(s)-1]))
}

func (w *textWriter) write(s string) {
	if s == "" {
		return
	}
	w.flush()
	if w.space && w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n") {
		w.sb.WriteByte(' ')
	}
	w.space = false
	w.sb.WriteString(s)
}

func (w *textWriter) flush() {
	if w.pending == 0 {
		return
	}
	if w.sb.Len() > 0 {
		w.sb.WriteString(strings.Repeat("\n", w.pending))
	}
	w.pending = 0
	w.space = false
}

// isCollapsible reports whether r is HTML whitespace. Non-breaking spaces
// survive collapsing.
func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
