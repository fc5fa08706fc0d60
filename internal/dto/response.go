package dto

import "time"

type PricingConfigDTO struct {
	MarkupPercentage float64 `json:"markup_percentage"`
	FixedMarkup      float64 `json:"fixed_markup"`
	MinPrice         float64 `json:"min_price"`
}

type ServiceInfoDTO struct {
	Message          string            `json:"message"`
	Version          string            `json:"version"`
	Status           string            `json:"status"`
	APIKeyConfigured bool              `json:"api_key_configured"`
	PricingConfig    PricingConfigDTO  `json:"pricing_config"`
	Endpoints        map[string]string `json:"endpoints"`
}

type HealthDTO struct {
	Status           string    `json:"status"`
	Service          string    `json:"service"`
	APIKeyConfigured bool      `json:"api_key_configured"`
	Timestamp        time.Time `json:"timestamp"`
}
