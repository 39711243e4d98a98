package main

import (
	"fmt"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/config"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/crm"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
)

// funnelDeps bundles the collaborators every deal-handling command needs.
type funnelDeps struct {
	classifier *funnel.Classifier
	normalizer *funnel.Normalizer
	client     *crm.Client
	crmConfig  *config.CRMConfig
}

func buildDeps() (*funnelDeps, error) {
	crmCfg, err := config.LoadCRMConfig()
	if err != nil {
		return nil, err
	}

	client, err := crm.NewClient(crmCfg.BaseURL, crmCfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create CRM client: %w", err)
	}

	classifier, err := funnel.NewClassifier(funnel.DefaultStageMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to build stage mapping: %w", err)
	}

	return &funnelDeps{
		classifier: classifier,
		normalizer: funnel.NewNormalizer(funnel.DefaultPipelineTable()),
		client:     client,
		crmConfig:  crmCfg,
	}, nil
}
