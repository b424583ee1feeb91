package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/followdiff/followdiff/pkg/pipeline"
)

// loadCommand creates the load command, a debugging aid that parses a single
// export file and shows how the loader understood it.
func (c *CLI) loadCommand() *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Inspect a single export file",
		Long: `Inspect a single export file: report the detected document shape, the
entry and identifier counts, and optionally the canonical identifiers.

Useful when an export doesn't produce the accounts you expect.

Examples:
  followdiff load following.json
  followdiff load followers.json --ids`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(c.Logger)
			doc, err := runner.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printKeyValue("Shape", doc.Shape.String())
			if doc.Key != "" {
				printKeyValue("Key", doc.Key)
			}
			printKeyValue("Entries", fmt.Sprintf("%d", doc.Entries))
			printKeyValue("Accounts", fmt.Sprintf("%d", doc.IDs.Len()))
			printKeyValue("Skipped", fmt.Sprintf("%d", doc.Skipped))

			if showIDs {
				fmt.Println()
				for _, id := range doc.IDs.Sorted() {
					fmt.Println(id)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "list the canonical identifiers")

	return cmd
}
