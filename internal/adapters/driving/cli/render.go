package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var renderQuery string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render markdown to HTML with highlighting",
	Long: `Renders markdown from a file, or from stdin when no file is given, to
HTML. Terms of --query are highlighted before conversion. If conversion
fails the markdown is printed unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderQuery, "query", "q", "", "query whose terms are highlighted")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderService == nil {
		return errors.New("render service not configured")
	}

	var (
		content []byte
		err     error
	)
	if len(args) == 1 {
		content, err = os.ReadFile(args[0])
	} else {
		content, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading markdown: %w", err)
	}

	cmd.Print(renderService.Render(string(content), renderQuery))
	return nil
}
