// Package copier wires clipboard triggers on a page to a clipboard backend
// and announces every successful copy on a notification stream.
package copier

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/evgfitil/docclip/internal/clipboard"
	"github.com/evgfitil/docclip/internal/i18n"
	"github.com/evgfitil/docclip/internal/notify"
	"github.com/evgfitil/docclip/internal/page"
	"github.com/evgfitil/docclip/internal/prompt"
)

// ErrNoTrigger indicates an index or selector that names no trigger.
var ErrNoTrigger = errors.New("no such clipboard trigger")

// Event describes a copy that reached the clipboard.
type Event struct {
	Trigger page.Trigger
	Text    string
}

// Options configures Setup.
type Options struct {
	Alert      *notify.Stream
	Translator *i18n.Translator
	Clipboard  clipboard.Writer
	Logger     *slog.Logger
	// OnSuccess hooks run after the alert is published.
	OnSuccess []func(Event)
}

// Copier copies the text behind a page's triggers.
type Copier struct {
	doc  *page.Document
	opts Options
	log  *slog.Logger
}

// Setup attaches to doc, which may be nil when only CopyText is used. It
// returns false, and a nil Copier, when the clipboard backend is not
// supported here.
func Setup(doc *page.Document, opts Options) (*Copier, bool) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clipboard == nil || !opts.Clipboard.Supported() {
		logger.Debug("clipboard unsupported, copy disabled")
		return nil, false
	}
	return &Copier{doc: doc, opts: opts, log: logger}, true
}

// Triggers returns the page's clipboard triggers, or nil without a page.
func (c *Copier) Triggers() []page.Trigger {
	if c.doc == nil {
		return nil
	}
	return c.doc.Triggers()
}

// Text returns what copying trigger would place on the clipboard.
func (c *Copier) Text(t page.Trigger) (string, error) {
	if t.Kind == page.KindText {
		return t.Text, nil
	}
	if c.doc == nil {
		return "", fmt.Errorf("%w: no page loaded", ErrNoTrigger)
	}
	n, err := c.doc.Query(t.Target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve copy target: %w", err)
	}
	return prompt.FormatCopyText(page.InnerText(n)), nil
}

// Copy writes the text behind t to the clipboard and publishes the
// localized "copied" message.
func (c *Copier) Copy(t page.Trigger) error {
	text, err := c.Text(t)
	if err != nil {
		c.log.Warn("copy target unresolved", "trigger", t.Index, "target", t.Target, "error", err)
		return err
	}
	return c.write(t, text)
}

// CopyText formats raw like the content of a copy target and copies it.
func (c *Copier) CopyText(raw string) error {
	return c.write(page.Trigger{Index: -1, Kind: page.KindTarget}, prompt.FormatCopyText(raw))
}

func (c *Copier) write(t page.Trigger, text string) error {
	if err := c.opts.Clipboard.WriteText(text); err != nil {
		c.log.Error("clipboard write failed", "trigger", t.Index, "error", err)
		return err
	}
	c.log.Info("copied", "trigger", t.Index, "kind", t.Kind.String(), "bytes", len(text))

	if c.opts.Alert != nil {
		msg := i18n.KeyCopied
		if c.opts.Translator != nil {
			msg = c.opts.Translator.Translate(i18n.KeyCopied)
		}
		c.opts.Alert.Publish(msg)
	}

	ev := Event{Trigger: t, Text: text}
	for _, fn := range c.opts.OnSuccess {
		fn(ev)
	}
	return nil
}

// CopyIndex copies the trigger at position i in document order.
func (c *Copier) CopyIndex(i int) error {
	triggers := c.Triggers()
	if i < 0 || i >= len(triggers) {
		return fmt.Errorf("%w: index %d (page has %d)", ErrNoTrigger, i, len(triggers))
	}
	return c.Copy(triggers[i])
}

// CopyTarget copies the element matched by selector, as if a trigger
// pointing at it had been clicked.
func (c *Copier) CopyTarget(selector string) error {
	for _, t := range c.Triggers() {
		if t.Kind == page.KindTarget && t.Target == selector {
			return c.Copy(t)
		}
	}
	return c.Copy(page.Trigger{Index: -1, Kind: page.KindTarget, Target: selector})
}
