package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/om-scorecard/internal/extract"
)

func newPayloadCmd(a *app) *cobra.Command {
	var tables bool
	cmd := &cobra.Command{
		Use:   "payload <file.pdf|file.txt>",
		Short: "Print the text that would be sent to the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex := extract.NewExtractor(extract.DefaultTableSettings, a.log())
			src := extract.FileSource{Path: args[0]}

			payload, err := ex.GetBestPayload(cmd.Context(), src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, payload); err != nil {
				return err
			}
			if !tables {
				return nil
			}
			found, err := ex.Tables(cmd.Context(), src)
			if err != nil {
				return err
			}
			for i, ft := range found {
				fmt.Fprintf(out, "\n--- table %d (page %d, %s/%s) ---\n", i+1, ft.Page+1, ft.Settings.Vertical, ft.Settings.Horizontal)
				for _, row := range ft.Table {
					fmt.Fprintln(out, row)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tables, "tables", false, "also print detected tables")
	return cmd
}
