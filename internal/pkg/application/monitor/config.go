package monitor

import (
	"io"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultCheckInterval = 5 * time.Minute
	DefaultSampleWindow  = 30 * time.Minute
)

type Config struct {
	CheckIntervalSeconds int                   `yaml:"checkIntervalSeconds"`
	SampleWindowMinutes  int                   `yaml:"sampleWindowMinutes"`
	EquipmentTypes       []EquipmentTypeConfig `yaml:"equipmentTypes"`
}

type EquipmentTypeConfig struct {
	Type    string         `yaml:"type"`
	Name    string         `yaml:"name"`
	Metrics []MetricConfig `yaml:"metrics"`
}

// MetricConfig enumerates the metric types that are eligible for checking on
// an equipment type. Samples of any other metric type are ignored, whatever
// their value.
type MetricConfig struct {
	Type string `yaml:"type"`
	Unit string `yaml:"unit"`
}

// DefaultConfig covers the dicer fleet when no configuration file is
// provided.
func DefaultConfig() *Config {
	return &Config{
		EquipmentTypes: []EquipmentTypeConfig{
			{
				Type: "dicer",
				Name: "Dicing machine",
				Metrics: []MetricConfig{
					{Type: "deformation(mm)", Unit: "mm"},
					{Type: "rotation speed", Unit: "rpm"},
					{Type: "tool crack", Unit: "%"},
					{Type: "temperature", Unit: "°C"},
					{Type: "yield rate", Unit: "%"},
				},
			},
		},
	}
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	b, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) CheckInterval() time.Duration {
	if c.CheckIntervalSeconds <= 0 {
		return DefaultCheckInterval
	}
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

func (c *Config) SampleWindow() time.Duration {
	if c.SampleWindowMinutes <= 0 {
		return DefaultSampleWindow
	}
	return time.Duration(c.SampleWindowMinutes) * time.Minute
}

// MetricsFor returns the metric allow list for an equipment type, keyed by
// metric type.
func (c *Config) MetricsFor(equipmentType string) map[string]MetricConfig {
	metrics := map[string]MetricConfig{}

	for _, et := range c.EquipmentTypes {
		if et.Type != equipmentType {
			continue
		}
		for _, m := range et.Metrics {
			metrics[m.Type] = m
		}
	}

	return metrics
}
