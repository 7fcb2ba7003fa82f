package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/evgfitil/docclip/internal/clipboard"
	"github.com/evgfitil/docclip/internal/config"
	"github.com/evgfitil/docclip/internal/copier"
	"github.com/evgfitil/docclip/internal/history"
	"github.com/evgfitil/docclip/internal/i18n"
	"github.com/evgfitil/docclip/internal/logging"
	"github.com/evgfitil/docclip/internal/notify"
	"github.com/evgfitil/docclip/internal/page"
	"github.com/evgfitil/docclip/internal/ui"
)

// ErrClipboardUnsupported indicates no clipboard backend works here.
var ErrClipboardUnsupported = errors.New("clipboard is not supported in this environment")

// newClipboard is replaced in tests.
var newClipboard = clipboard.New

// app holds the collaborators shared by the copy commands.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	tr    *i18n.Translator
	alert *notify.Stream
	board clipboard.Writer
	hist  *history.Store
	theme ui.Theme
	errW  io.Writer
	done  chan struct{}
}

// newApp loads configuration and starts printing notifications to errW.
// Callers must call close to flush pending notifications.
func newApp(errW io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if langFlag != "" {
		cfg.Language = langFlag
	}
	if backendFlag != "" {
		cfg.Backend = backendFlag
	}

	logger, err := logging.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(errW, "warning: logging disabled: %v\n", err)
	}

	tr, err := i18n.New(cfg.Language, cfg.TranslationOverrides())
	if err != nil {
		return nil, err
	}

	board, err := newClipboard(cfg.Backend, errW)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:   cfg,
		log:   logger,
		tr:    tr,
		alert: notify.NewStream(),
		board: board,
		theme: ui.DefaultTheme(),
		errW:  errW,
		done:  make(chan struct{}),
	}
	if cfg.History {
		a.hist = history.NewStore(config.StateDir())
	}
	a.theme.Plain = !isTerminal(errW)
	a.listen()
	return a, nil
}

func (a *app) listen() {
	ch, _ := a.alert.Subscribe(16)
	go func() {
		defer close(a.done)
		for msg := range ch {
			fmt.Fprintln(a.errW, a.theme.Toast(msg))
		}
	}()
}

// close stops the notification stream and waits until every toast is out.
func (a *app) close() {
	a.alert.Close()
	<-a.done
}

// copier wires doc, which may be nil, to the clipboard. source names the
// page in history entries.
func (a *app) copier(doc *page.Document, source string) (*copier.Copier, error) {
	opts := copier.Options{
		Alert:      a.alert,
		Translator: a.tr,
		Clipboard:  a.board,
		Logger:     a.log,
	}
	if a.hist != nil {
		opts.OnSuccess = append(opts.OnSuccess, a.record(source))
	}

	c, ok := copier.Setup(doc, opts)
	if !ok {
		return nil, ErrClipboardUnsupported
	}
	return c, nil
}

func (a *app) record(source string) func(copier.Event) {
	return func(ev copier.Event) {
		entry := history.Entry{
			Source:    source,
			Selector:  ev.Trigger.Target,
			Text:      ev.Text,
			Timestamp: time.Now(),
		}
		if err := a.hist.Add(entry); err != nil {
			a.log.Warn("failed to record history", "error", err)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
