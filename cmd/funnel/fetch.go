package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func fetchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the deal set and print per-stage totals",
		Long: `Fetch the full deal set headlessly, classify every raw stage onto the
canonical funnel and print the totals per stage. Useful for scripts and for
checking connectivity without opening the browser.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(100,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Buscando negócios...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionClearOnFinish(),
			)

			ld := loader.New(deps.client,
				loader.WithTimeout(deps.crmConfig.Timeout),
				loader.WithOnProgress(func(p loader.Progress) {
					bar.Describe(fmt.Sprintf("[cyan][bold]%s...[reset]", p.Label))
					_ = bar.Set(p.Percent)
				}),
			)

			result, err := ld.Load(cmd.Context(), true)
			if err != nil {
				return err
			}
			_ = bar.Finish()

			groups := deps.classifier.Group(result.Deals.Grouped)

			if asJSON {
				return printJSON(cmd, groups)
			}
			printTotals(cmd, groups, result.Deals.Total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the grouped deals as JSON")
	return cmd
}

func printTotals(cmd *cobra.Command, groups map[model.CanonicalCategory][]model.Deal, total int) {
	classified := 0
	for _, cat := range model.Categories() {
		deals := groups[cat]
		classified += len(deals)
		cmd.Printf("%-12s %5d\n", cat.Label(), len(deals))
	}
	cmd.Printf("%-12s %5d\n", "Total", classified)
	if dropped := total - classified; dropped > 0 {
		cmd.Printf("%-12s %5d (estágio não mapeado)\n", "Ignorados", dropped)
	}
}

func printJSON(cmd *cobra.Command, groups map[model.CanonicalCategory][]model.Deal) error {
	out := make(map[string][]model.Deal, len(groups))
	for cat, deals := range groups {
		out[cat.String()] = deals
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
