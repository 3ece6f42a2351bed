package cmd

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how much course content is loaded and indexed",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, session, err := loadSession()
			if err != nil {
				return err
			}

			cmd.Printf("Content directory: %s\n", cfg.ContentDir)
			cmd.Printf("Lectures:          %d\n", len(catalog.Lectures))
			cmd.Printf("Sections:          %d\n", len(catalog.Sections))
			cmd.Printf("Assignments:       %d\n", len(catalog.Assignments))
			cmd.Printf("Indexed entries:   %d\n", session.TotalIndexed())
			return nil
		},
	}
}
