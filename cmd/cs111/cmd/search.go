package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/ui"
)

func newSearchCmd() *cobra.Command {
	var (
		jsonOutput bool
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search course content once and print ranked results",
		Long: `Search runs one query against the course index and prints up to 10
ranked results, best first. Each result carries a navigation route such as
/lecture/5 or /assignment/a3.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := loadSession()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := session.Search(query)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			styled := !plain && ui.IsTerminal(os.Stdout)
			cmd.Print(ui.RenderResults(results, styled))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable terminal styling")

	return cmd
}
