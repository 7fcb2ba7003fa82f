package page

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// selector is a single compound selector: an optional tag name followed by
// at most one #id or .class.
type selector struct {
	tag   string
	id    string
	class string
}

func parseSelector(s string) (selector, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " >+~[]:,*") {
		return selector{}, fmt.Errorf("%w: %q", ErrBadSelector, s)
	}

	var sel selector
	i := strings.IndexAny(s, "#.")
	if i < 0 {
		sel.tag = strings.ToLower(s)
		return sel, nil
	}

	sel.tag = strings.ToLower(s[:i])
	name := s[i+1:]
	if name == "" || strings.ContainsAny(name, "#.") {
		return selector{}, fmt.Errorf("%w: %q", ErrBadSelector, s)
	}
	if s[i] == '#' {
		sel.id = name
	} else {
		sel.class = name
	}
	return sel, nil
}

func (sel selector) matches(n *html.Node) bool {
	if sel.tag != "" && n.Data != sel.tag {
		return false
	}
	if sel.id != "" {
		id, _ := attr(n, "id")
		if id != sel.id {
			return false
		}
	}
	if sel.class != "" {
		classes, _ := attr(n, "class")
		if !containsField(classes, sel.class) {
			return false
		}
	}
	return true
}

func containsField(list, name string) bool {
	for _, f := range strings.Fields(list) {
		if f == name {
			return true
		}
	}
	return false
}
