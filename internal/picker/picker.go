package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/evgfitil/docclip/internal/page"
)

// ErrAborted indicates user cancelled selection
var ErrAborted = errors.New("selection aborted")

// ErrEmpty indicates there was nothing to pick from
var ErrEmpty = errors.New("no clipboard triggers to pick from")

// finder matches fuzzyfinder.Find so tests can substitute it.
type finder func(items []page.Trigger, label func(i int) string, preview func(i, w, h int) string) (int, error)

func fuzzyFind(items []page.Trigger, label func(i int) string, preview func(i, w, h int) string) (int, error) {
	return fuzzyfinder.Find(items, label, fuzzyfinder.WithPreviewWindow(preview))
}

// PickTrigger displays an fzf-style picker over triggers. preview returns the
// text a trigger would copy and is shown next to the list. A single trigger
// is returned without prompting.
func PickTrigger(triggers []page.Trigger, preview func(page.Trigger) string) (page.Trigger, error) {
	return pickWith(fuzzyFind, triggers, preview)
}

func pickWith(find finder, triggers []page.Trigger, preview func(page.Trigger) string) (page.Trigger, error) {
	if len(triggers) == 0 {
		return page.Trigger{}, ErrEmpty
	}
	if len(triggers) == 1 {
		return triggers[0], nil
	}

	idx, err := find(triggers,
		func(i int) string { return Label(triggers[i]) },
		func(i, _, _ int) string {
			if i < 0 || preview == nil {
				return ""
			}
			return preview(triggers[i])
		},
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return page.Trigger{}, ErrAborted
		}
		return page.Trigger{}, err
	}
	return triggers[idx], nil
}

// Label is the one-line description of a trigger used in lists.
func Label(t page.Trigger) string {
	switch t.Kind {
	case page.KindText:
		text := strings.ReplaceAll(t.Text, "\n", " ")
		if r := []rune(text); len(r) > 60 {
			text = string(r[:57]) + "..."
		}
		return fmt.Sprintf("%d  text    %q", t.Index, text)
	default:
		return fmt.Sprintf("%d  target  %s", t.Index, t.Target)
	}
}
