// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/common"
	"github.com/spf13/viper"
)

// CRMConfig holds the deal-fetch collaborator settings.
type CRMConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// LoadCRMConfig loads the CRM settings from Viper (config file or ZOPS_ env
// vars).
func LoadCRMConfig() (*CRMConfig, error) {
	cfg := &CRMConfig{
		BaseURL: viper.GetString("crm.base_url"),
		Token:   viper.GetString("crm.token"),
		Timeout: viper.GetDuration("crm.timeout"),
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: crm.base_url is required (set it in the config file or ZOPS_CRM_BASE_URL)", common.ErrMissingConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	return cfg, nil
}
