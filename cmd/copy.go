package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/evgfitil/docclip/internal/copier"
	"github.com/evgfitil/docclip/internal/page"
	"github.com/evgfitil/docclip/internal/picker"
)

var (
	copyTarget string
	copyIndex  int
)

var copyCmd = &cobra.Command{
	Use:   "copy <page.html|->",
	Short: "Copy the text behind one of a page's clipboard triggers",
	Long: `copy resolves a clipboard trigger of the page, strips prompts from the
text it points at and writes it to the clipboard. Without --target or
--index an fzf-style picker lists the triggers.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().StringVarP(&copyTarget, "target", "t", "", "selector of the element to copy (#id, .class, tag)")
	copyCmd.Flags().IntVarP(&copyIndex, "index", "i", -1, "index of the trigger to copy, as shown by list")
	copyCmd.MarkFlagsMutuallyExclusive("target", "index")
}

func runCopy(cmd *cobra.Command, args []string) error {
	doc, err := loadPage(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	c, err := a.copier(doc, args[0])
	if err != nil {
		return err
	}
	return copySelected(c)
}

// copySelected copies the trigger chosen by flags, or by the picker.
func copySelected(c *copier.Copier) error {
	switch {
	case copyTarget != "":
		return c.CopyTarget(copyTarget)
	case copyIndex >= 0:
		return c.CopyIndex(copyIndex)
	}

	t, err := picker.PickTrigger(c.Triggers(), func(t page.Trigger) string {
		text, err := c.Text(t)
		if err != nil {
			return err.Error()
		}
		return text
	})
	if err != nil {
		if errors.Is(err, picker.ErrAborted) {
			return ErrCancelled
		}
		return err
	}
	return c.Copy(t)
}
