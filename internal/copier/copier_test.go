package copier

import (
	"errors"
	"strings"
	"testing"

	"github.com/evgfitil/docclip/internal/i18n"
	"github.com/evgfitil/docclip/internal/notify"
	"github.com/evgfitil/docclip/internal/page"
)

type fakeClipboard struct {
	supported bool
	err       error
	writes    []string
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func (f *fakeClipboard) Supported() bool { return f.supported }

const docPage = `<html><body>
<pre id="py"><span>&gt;&gt;&gt; </span>x = 1
<span>... </span>y = 2
</pre>
<button data-clipboard-target="#py"></button>
<pre id="sh">$ ls
file1
file2
</pre>
<button data-clipboard-target="#sh"></button>
<button data-clipboard-text="pip install docclip\n"></button>
<button data-clipboard-target="#missing"></button>
</body></html>`

func setupCopier(t *testing.T, cb *fakeClipboard, opts Options) (*Copier, <-chan string) {
	t.Helper()
	doc, err := page.Parse(strings.NewReader(docPage))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	alert := notify.NewStream()
	t.Cleanup(alert.Close)
	ch, _ := alert.Subscribe(8)

	tr, err := i18n.New("en", nil)
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}

	opts.Alert = alert
	opts.Translator = tr
	opts.Clipboard = cb
	c, ok := Setup(doc, opts)
	if !ok {
		t.Fatal("Setup() reported unsupported clipboard")
	}
	return c, ch
}

func TestSetup_Unsupported(t *testing.T) {
	c, ok := Setup(nil, Options{Clipboard: &fakeClipboard{supported: false}})
	if ok || c != nil {
		t.Errorf("Setup() = (%v, %v), want (nil, false)", c, ok)
	}

	c, ok = Setup(nil, Options{})
	if ok || c != nil {
		t.Errorf("Setup() without clipboard = (%v, %v), want (nil, false)", c, ok)
	}
}

func TestCopyIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "python prompts stripped", index: 0, want: "x = 1\ny = 2"},
		{name: "shell output dropped", index: 1, want: "ls"},
		{name: "literal text not formatted", index: 2, want: `pip install docclip\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &fakeClipboard{supported: true}
			c, alerts := setupCopier(t, cb, Options{})

			if err := c.CopyIndex(tt.index); err != nil {
				t.Fatalf("CopyIndex(%d) error = %v", tt.index, err)
			}
			if len(cb.writes) != 1 || cb.writes[0] != tt.want {
				t.Errorf("clipboard writes = %q, want [%q]", cb.writes, tt.want)
			}
			if got := <-alerts; got != "Copied to clipboard" {
				t.Errorf("alert = %q, want %q", got, "Copied to clipboard")
			}
		})
	}
}

func TestCopy_OneAlertPerCopy(t *testing.T) {
	cb := &fakeClipboard{supported: true}
	c, alerts := setupCopier(t, cb, Options{})

	for i := 0; i < 3; i++ {
		if err := c.CopyIndex(0); err != nil {
			t.Fatalf("CopyIndex error = %v", err)
		}
	}

	if len(alerts) != 3 {
		t.Errorf("got %d alerts, want 3", len(alerts))
	}
}

func TestCopy_MissingTarget(t *testing.T) {
	cb := &fakeClipboard{supported: true}
	c, alerts := setupCopier(t, cb, Options{})

	err := c.CopyIndex(3)
	if !errors.Is(err, page.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(cb.writes) != 0 {
		t.Errorf("nothing should be written, got %q", cb.writes)
	}
	if len(alerts) != 0 {
		t.Errorf("no alert expected, got %d", len(alerts))
	}
}

func TestCopy_WriteFailureNoAlert(t *testing.T) {
	cb := &fakeClipboard{supported: true, err: errors.New("no display")}
	var events []Event
	c, alerts := setupCopier(t, cb, Options{OnSuccess: []func(Event){func(e Event) { events = append(events, e) }}})

	if err := c.CopyIndex(0); err == nil {
		t.Fatal("expected write error")
	}
	if len(alerts) != 0 {
		t.Errorf("no alert expected on failure, got %d", len(alerts))
	}
	if len(events) != 0 {
		t.Errorf("no success hook expected on failure, got %d", len(events))
	}
}

func TestCopyIndex_OutOfRange(t *testing.T) {
	c, _ := setupCopier(t, &fakeClipboard{supported: true}, Options{})

	for _, i := range []int{-1, 4, 100} {
		if err := c.CopyIndex(i); !errors.Is(err, ErrNoTrigger) {
			t.Errorf("CopyIndex(%d) error = %v, want ErrNoTrigger", i, err)
		}
	}
}

func TestCopyTarget(t *testing.T) {
	cb := &fakeClipboard{supported: true}
	var events []Event
	c, _ := setupCopier(t, cb, Options{OnSuccess: []func(Event){func(e Event) { events = append(events, e) }}})

	if err := c.CopyTarget("#sh"); err != nil {
		t.Fatalf("CopyTarget error = %v", err)
	}
	if len(events) != 1 || events[0].Trigger.Index != 1 || events[0].Text != "ls" {
		t.Errorf("unexpected events: %+v", events)
	}

	if err := c.CopyTarget("pre#py"); err != nil {
		t.Fatalf("CopyTarget for untriggered selector error = %v", err)
	}
	if events[1].Trigger.Index != -1 || events[1].Text != "x = 1\ny = 2" {
		t.Errorf("unexpected event: %+v", events[1])
	}
}

func TestCopyText(t *testing.T) {
	cb := &fakeClipboard{supported: true}
	c, ok := Setup(nil, Options{Clipboard: cb})
	if !ok {
		t.Fatal("Setup() reported unsupported")
	}

	if err := c.CopyText(">>> print(1)\n"); err != nil {
		t.Fatalf("CopyText error = %v", err)
	}
	if len(cb.writes) != 1 || cb.writes[0] != "print(1)" {
		t.Errorf("writes = %q", cb.writes)
	}
	if c.Triggers() != nil {
		t.Error("Triggers() without a page should be nil")
	}
	if _, err := c.Text(page.Trigger{Kind: page.KindTarget, Target: "#x"}); !errors.Is(err, ErrNoTrigger) {
		t.Errorf("Text without page error = %v, want ErrNoTrigger", err)
	}
}

func TestCopy_TranslatedAlert(t *testing.T) {
	doc, err := page.Parse(strings.NewReader(docPage))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tr, err := i18n.New("de", nil)
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	alert := notify.NewStream()
	defer alert.Close()
	a, _ := alert.Subscribe(1)
	b, _ := alert.Subscribe(1)

	c, _ := Setup(doc, Options{Alert: alert, Translator: tr, Clipboard: &fakeClipboard{supported: true}})
	if err := c.CopyIndex(1); err != nil {
		t.Fatalf("CopyIndex error = %v", err)
	}

	for _, ch := range []<-chan string{a, b} {
		if got := <-ch; got != "In Zwischenablage kopiert" {
			t.Errorf("alert = %q", got)
		}
	}
}
