package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasuya3/INT-YAMAE/export"
)

func newInspectCmd() *cobra.Command {
	var asJSON, asMarkdown bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the slides of a .pptx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && asMarkdown {
				return errors.New("--json and --markdown are mutually exclusive")
			}
			out := cmd.OutOrStdout()

			if asMarkdown {
				md, err := export.ExtractMarkdown(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, md)
				return nil
			}

			outline, err := export.ReadOutline(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(outline)
			}

			fmt.Fprintf(out, "総スライド数: %d\n", len(outline.Slides))
			for _, s := range outline.Slides {
				fmt.Fprintf(out, "%3d  %s\n", s.Number, s.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outline as JSON")
	cmd.Flags().BoolVar(&asMarkdown, "markdown", false, "print all slide text as Markdown")
	return cmd
}
