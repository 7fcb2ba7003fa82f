package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgfitil/docclip/internal/config"
)

const ExitCodeCancelled = 130

var (
	Version     = "dev"
	showConfig  bool
	langFlag    string
	backendFlag string
)

// ErrCancelled indicates user cancelled the operation.
var ErrCancelled = errors.New("operation cancelled")

var rootCmd = &cobra.Command{
	Use:   "docclip",
	Short: "Copy code blocks from documentation pages without their prompts",
	Long: `docclip finds the copy buttons of a rendered documentation page, strips
interactive prompts (">>> ", "... ", "$ ") from the code they point at and
puts the result on the clipboard.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().BoolVar(&showConfig, "config", false, "show config file path")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "language for notifications (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "clipboard backend: auto, system or osc52 (overrides config)")

	rootCmd.AddCommand(formatCmd, listCmd, copyCmd, historyCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, _ []string) error {
	if showConfig {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		return nil
	}
	return cmd.Help()
}
