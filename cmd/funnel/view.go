package main

import (
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the sales funnel interactively",
		Long: `Open the interactive funnel browser: deals grouped by canonical stage,
with faceted filtering, per-stage disclosure and manual refresh.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(),
				tui.WithFetcher(deps.client),
				tui.WithClassifier(deps.classifier),
				tui.WithNormalizer(deps.normalizer),
				tui.WithTimeout(deps.crmConfig.Timeout),
			)
		},
	}
}
