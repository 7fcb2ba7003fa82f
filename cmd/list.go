package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/evgfitil/docclip/internal/page"
	"github.com/evgfitil/docclip/internal/prompt"
	"github.com/evgfitil/docclip/internal/stdin"
	"github.com/evgfitil/docclip/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list <page.html|->",
	Short: "List the clipboard triggers of a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	doc, err := loadPage(args[0])
	if err != nil {
		return err
	}
	theme := ui.DefaultTheme()
	theme.Plain = !isTerminal(cmd.OutOrStdout())
	return writeTriggers(cmd.OutOrStdout(), doc, theme)
}

// writeTriggers prints one row per trigger: index, kind, what it copies and
// whether the copied text contains prompts.
func writeTriggers(w io.Writer, doc *page.Document, theme ui.Theme) error {
	type row struct{ index, kind, what, note string }

	var rows []row
	whatWidth := 0
	for _, t := range doc.Triggers() {
		r := row{index: strconv.Itoa(t.Index), kind: t.Kind.String(), what: t.Target}
		switch t.Kind {
		case page.KindText:
			r.what = strconv.Quote(t.Text)
		case page.KindTarget:
			n, err := doc.Query(t.Target)
			switch {
			case err != nil:
				r.note = "missing"
			case prompt.HasPrompt(page.InnerText(n)):
				r.note = "prompt"
			}
		}
		whatWidth = max(whatWidth, lipgloss.Width(r.what))
		rows = append(rows, r)
	}

	index, kind, what, note := theme.AccentStyle(), theme.TextStyle(), theme.TextStyle(), theme.MutedStyle()
	if theme.Plain {
		index, kind, what, note = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}
	for _, r := range rows {
		line := index.Width(4).Render(r.index) +
			kind.Width(8).Render(r.kind) +
			what.Width(whatWidth+2).Render(r.what) +
			note.Render(r.note)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// loadPage parses the HTML page at path, or piped stdin for "-".
func loadPage(path string) (*page.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = stdin.ReadPage()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("page %s is empty", path)
	}
	return page.Parse(bytes.NewReader(data))
}
