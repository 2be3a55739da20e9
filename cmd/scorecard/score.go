package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/om-scorecard/constants"
	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
	"github.com/joseph-ayodele/om-scorecard/internal/export"
	"github.com/joseph-ayodele/om-scorecard/internal/scoring"
	"github.com/joseph-ayodele/om-scorecard/internal/template"
)

func newScoreCmd(a *app) *cobra.Command {
	var (
		buildingType string
		templatePath string
		outPath      string
		asOf         string
		asJSON       bool
	)
	cmd := &cobra.Command{
		Use:   "score <fields.json|->",
		Short: "Score an already extracted field set without calling the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readFields(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			now := time.Now()
			if asOf != "" {
				if now, err = time.Parse(time.DateOnly, asOf); err != nil {
					return common.InvalidArgument("--as-of wants YYYY-MM-DD", err)
				}
			}
			expiration := fields.LeaseTerm.Expiration
			if err := fields.ResolveLeaseTerm(now); err != nil {
				a.log().Warn("score.lease_term_unparsed", "expiration", expiration, "err", err)
			}
			if buildingType != "" {
				bt, ok := constants.Canonicalize(buildingType)
				if !ok {
					return common.InvalidArgument(fmt.Sprintf("unknown building type %q (want one of %s)",
						buildingType, strings.Join(constants.BuildingTypes(), ", ")), common.ErrInvalidInput)
				}
				fields.DriveThruCarryOut = deal.Text(string(bt))
			}
			fields = deal.Normalize(fields)
			sc := scoring.Score(fields)

			if templatePath != "" {
				if outPath == "" {
					return common.InvalidArgument("--template needs --out", common.ErrInvalidInput)
				}
				tpl, err := template.FileSource{Path: templatePath}.Open(cmd.Context())
				if err != nil {
					return err
				}
				defer tpl.Close()
				if _, err := export.NewWriter(a.log()).Write(cmd.Context(), fields, tpl, outPath); err != nil {
					return common.Internal("write scorecard", err)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(sc)
			}
			return printScorecard(cmd.OutOrStdout(), sc)
		},
	}
	cmd.Flags().StringVar(&buildingType, "building-type", "", "override the drive-thru/carry-out answer (QSR, CDR, drive-thru, carry-out)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "date remaining lease years are measured from, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&templatePath, "template", "", "also fill this blank workbook")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "where to save the filled workbook")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the scorecard as JSON")
	return cmd
}

func readFields(stdin io.Reader, path string) (deal.Fields, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return deal.Fields{}, common.InvalidArgument("read fields", err)
	}
	f, err := deal.DecodeFields(b)
	if err != nil {
		return deal.Fields{}, common.InvalidArgument("decode fields", err)
	}
	return f, nil
}

func printScorecard(w io.Writer, sc scoring.Scorecard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, sc.Header)
	fmt.Fprintf(tw, "building type: %s\n\n", sc.BuildingType)
	fmt.Fprintln(tw, "ATTRIBUTE\tSCORE\tCOMMENT")
	for _, e := range sc.Entries {
		fmt.Fprintf(tw, "%s\t%g\t%s\n", e.Attribute, e.Score, e.Comment)
	}
	fmt.Fprintf(tw, "TOTAL\t%g\t\n", sc.Total())
	return tw.Flush()
}
