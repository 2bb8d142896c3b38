package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kasuya3/INT-YAMAE/decks"
	"github.com/kasuya3/INT-YAMAE/export"
)

const workbookFileName = "物流ソリューション提案書_ヤマエ久野_付録.xlsx"

func newWorkbookCmd(flags *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "workbook",
		Short: "Write the financial tables as an .xlsx appendix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			path := out
			if path == "" {
				path = filepath.Join(s.cfg.OutputDir, workbookFileName)
			}

			tables := decks.AppendixTables()
			err = export.WriteWorkbook(path, tables, export.WorkbookOptions{
				Title:       decks.Proposal.Title + " 付録",
				Creator:     s.cfg.Creator,
				Description: "提案書に掲載した財務指標・投資対効果の一覧",
				Subject:     "物流ソリューション提案",
			})
			if err != nil {
				return err
			}
			s.out.Logf("[WORKBOOK] wrote %s (%d sheets)", path, len(tables))

			fmt.Fprintf(cmd.OutOrStdout(), "付録ワークブックを作成しました: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output .xlsx path (default: <output-dir>/"+workbookFileName+")")
	return cmd
}
