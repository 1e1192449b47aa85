package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatasetSettings holds settings for dataset acquisition and caching
type DatasetSettings struct {
	CacheDir  string  `mapstructure:"cache_dir" validate:"required"`
	IndexDir  string  `mapstructure:"index_dir" validate:"required"`
	SourceURL string  `mapstructure:"source_url" validate:"required,url"`
	MinScore  float64 `mapstructure:"min_score" validate:"gte=0,lte=5"`
}

// Validate checks that all fields in DatasetSettings are valid
func (s *DatasetSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatasetSettings: %w", err)
	}

	return nil
}
