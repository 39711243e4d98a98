package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/config"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/sheets"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		search    string
		pipelines []string
		fromDate  string
		toDate    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the funnel to Google Sheets",
		Long: `Fetch the deal set, apply the given filters and write the result to a
Google Sheets spreadsheet: a per-stage summary followed by one row per deal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}

			sheetsCfg, err := config.LoadSheetsConfig()
			if err != nil {
				return err
			}

			criteria, err := exportCriteria(search, pipelines, deps.normalizer, fromDate, toDate)
			if err != nil {
				return err
			}

			ld := loader.New(deps.client, loader.WithTimeout(deps.crmConfig.Timeout))
			result, err := ld.Load(cmd.Context(), true)
			if err != nil {
				return err
			}

			groups := deps.classifier.Group(result.Deals.Grouped)
			engine := funnel.NewEngine(deps.classifier, deps.normalizer)
			filtered, counts := engine.Filter(groups, criteria)

			report := buildReport(filtered, counts, deps.normalizer, !criteria.IsZero())

			writer, err := sheets.NewWriter(cmd.Context(), *sheetsCfg, slog.Default())
			if err != nil {
				return err
			}
			if err := writer.Write(cmd.Context(), report); err != nil {
				return err
			}

			cmd.Printf("Exported %d deals across %d stages\n", report.Total, len(report.Summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free-text filter on the deal name")
	cmd.Flags().StringSliceVar(&pipelines, "pipeline", nil, "restrict to these pipelines (name or id, repeatable)")
	cmd.Flags().StringVar(&fromDate, "from", "", "earliest creation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "latest creation date (YYYY-MM-DD)")
	return cmd
}

func exportCriteria(search string, pipelines []string, normalizer *funnel.Normalizer, fromDate, toDate string) (funnel.FilterCriteria, error) {
	criteria := funnel.FilterCriteria{Search: search}

	for _, p := range pipelines {
		criteria.Pipelines = append(criteria.Pipelines, normalizer.Normalize(p))
	}

	parse := func(raw, flag string) (*time.Time, error) {
		if raw == "" {
			return nil, nil
		}
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s date %q: use YYYY-MM-DD", flag, raw)
		}
		return &t, nil
	}

	var err error
	if criteria.CreatedFrom, err = parse(fromDate, "from"); err != nil {
		return criteria, err
	}
	if criteria.CreatedTo, err = parse(toDate, "to"); err != nil {
		return criteria, err
	}
	return criteria, nil
}

func buildReport(
	filtered map[model.CanonicalCategory][]model.Deal,
	counts map[model.CanonicalCategory]int,
	normalizer *funnel.Normalizer,
	hasFilter bool,
) *sheets.FunnelReport {
	report := &sheets.FunnelReport{
		GeneratedAt: time.Now(),
		Filtered:    hasFilter,
	}

	for _, cat := range model.Categories() {
		deals, ok := filtered[cat]
		if !ok {
			continue
		}
		report.Summary = append(report.Summary, sheets.CategorySummaryRow{
			Category: cat.Label(),
			Count:    counts[cat],
		})
		report.Total += counts[cat]

		for _, d := range deals {
			row := sheets.DealRow{
				Category:  cat.Label(),
				Pipeline:  normalizer.Normalize(d.Pipeline),
				DisplayID: d.DisplayID,
				Name:      d.Name,
				Company:   d.Company,
				CNPJ:      d.CNPJ,
				City:      d.City,
				State:     d.State,
			}
			if t, ok := d.CreatedTime(); ok {
				row.CreatedAt = t.Format("02/01/2006")
			}
			report.Deals = append(report.Deals, row)
		}
	}

	return report
}
