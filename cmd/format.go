package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evgfitil/docclip/internal/prompt"
)

var formatCopy bool

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Strip prompts from text read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatCopy, "copy", "c", false, "also copy the result to the clipboard")
}

func runFormat(cmd *cobra.Command, args []string) error {
	raw, err := readText(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prompt.FormatCopyText(raw))
	if !formatCopy {
		return nil
	}

	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	c, err := a.copier(nil, sourceName(args))
	if err != nil {
		return err
	}
	return c.CopyText(raw)
}

// readText returns the contents of the file named in args, or piped stdin.
func readText(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	return readStdin()
}

func sourceName(args []string) string {
	if len(args) == 1 && args[0] != "-" {
		return args[0]
	}
	return "stdin"
}
