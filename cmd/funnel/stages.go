package main

import (
	"sort"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/spf13/cobra"
)

func stagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the stage mapping table",
		Long: `Print every known raw stage code and the canonical funnel stage it maps
to. Deals in an unlisted stage are dropped from the funnel view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			classifier, err := funnel.NewClassifier(funnel.DefaultStageMapping())
			if err != nil {
				return err
			}

			byCategory := make(map[model.CanonicalCategory][]string)
			for _, code := range classifier.Codes() {
				if cat, ok := classifier.Classify(code); ok {
					byCategory[cat] = append(byCategory[cat], code)
				}
			}

			for _, cat := range model.Categories() {
				codes := byCategory[cat]
				sort.Strings(codes)
				cmd.Printf("%s (%d)\n", cat.Label(), len(codes))
				for _, code := range codes {
					cmd.Printf("  %s\n", code)
				}
			}
			return nil
		},
	}
}
