package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
	"github.com/joseph-ayodele/om-scorecard/internal/pipeline"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		text   string
		outDir string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "build [file.pdf|file.txt]...",
		Short: "Build a scorecard workbook for each document",
		Example: `  scorecard build "Taco Bell OM.pdf"
  scorecard build --text "$(cat listing.txt)" --out ./scorecards`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && text == "" {
				return common.InvalidArgument("pass at least one file or --text", common.ErrInvalidInput)
			}
			if len(args) > 0 && text != "" {
				return common.InvalidArgument("--text cannot be combined with files", common.ErrInvalidInput)
			}
			proc, err := pipeline.FromConfig(cmd.Context(), a.config(), a.log())
			if err != nil {
				return err
			}

			var sources []extract.Source
			if text != "" {
				sources = append(sources, extract.TextSource(text))
			}
			for _, p := range args {
				sources = append(sources, extract.FileSource{Path: p})
			}

			var errs []error
			for _, src := range sources {
				res, err := proc.Build(cmd.Context(), pipeline.Request{Source: src, OutputDir: outDir})
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if err := printResult(cmd.OutOrStdout(), res, asJSON); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "build from raw OM text instead of files")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the fields and scorecard as JSON")
	return cmd
}

type buildOutput struct {
	RequestID string  `json:"request_id"`
	Path      string  `json:"path"`
	Total     float64 `json:"total"`
	Fields    any     `json:"fields"`
	Scorecard any     `json:"scorecard"`
}

func printResult(w io.Writer, res pipeline.Result, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintf(w, "%s\t%g\n", res.OutputPath, res.Scorecard.Total())
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(buildOutput{
		RequestID: res.RequestID,
		Path:      res.OutputPath,
		Total:     res.Scorecard.Total(),
		Fields:    res.Fields,
		Scorecard: res.Scorecard,
	})
}
