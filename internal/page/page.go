// Package page finds clipboard triggers in a rendered documentation page and
// resolves the elements they point at.
package page

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const (
	AttrTarget = "data-clipboard-target"
	AttrText   = "data-clipboard-text"
)

var (
	// ErrNotFound indicates no element matched a selector.
	ErrNotFound = errors.New("element not found")
	// ErrBadSelector indicates a selector outside the supported subset.
	ErrBadSelector = errors.New("unsupported selector")
)

// Kind tells how a trigger supplies its text.
type Kind int

const (
	KindTarget Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindTarget:
		return "target"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Trigger is an element carrying a clipboard marker attribute.
type Trigger struct {
	Index  int
	Tag    string
	ID     string
	Kind   Kind
	Target string
	Text   string
}

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// Triggers returns every clipboard trigger in document order. When an element
// carries both markers the target wins.
func (d *Document) Triggers() []Trigger {
	var triggers []Trigger
	walkElements(d.root, func(n *html.Node) bool {
		target, hasTarget := attr(n, AttrTarget)
		text, hasText := attr(n, AttrText)
		if !hasTarget && !hasText {
			return false
		}

		t := Trigger{
			Index:  len(triggers),
			Tag:    n.Data,
			Target: target,
			Text:   text,
			Kind:   KindText,
		}
		t.ID, _ = attr(n, "id")
		if hasTarget {
			t.Kind = KindTarget
		}
		triggers = append(triggers, t)
		return false
	})
	return triggers
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) (*html.Node, error) {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil, err
	}

	var found *html.Node
	walkElements(d.root, func(n *html.Node) bool {
		if sel.matches(n) {
			found = n
			return true
		}
		return false
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return found, nil
}

// walkElements visits element nodes depth-first in document order until fn
// returns true.
func walkElements(n *html.Node, fn func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && fn(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if walkElements(c, fn) {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}
