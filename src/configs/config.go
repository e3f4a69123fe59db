package configs

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the main configuration structure, loaded from .config.yaml or
// config.yaml in the working directory.
type Config struct {
	Log struct {
		LogFormat string `yaml:"log_format"`
		LogLevel  string `yaml:"log_level"`
		LogDir    string `yaml:"log_dir"`
		LogFile   string `yaml:"log_file"`
	} `yaml:"log"`

	Web struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"web"`

	Detector DetectorConfig `yaml:"detector"`
	Quality  QualityConfig  `yaml:"quality"`
}

// DetectorConfig configures the external object-detection service.
type DetectorConfig struct {
	BaseURL             string  `yaml:"url"`                  // inference service endpoint
	ConfidenceThreshold float64 `yaml:"confidence_threshold"` // minimum detection confidence
	Timeout             int     `yaml:"timeout"`              // request timeout in seconds
}

// QualityConfig holds the image quality gate thresholds applied before an
// image is handed to the detector.
type QualityConfig struct {
	MaxFileSize   int64   `yaml:"max_file_size"`  // maximum image bytes
	MinImageSize  int     `yaml:"min_image_size"` // minimum width/height in pixels
	MinSharpness  float64 `yaml:"min_sharpness"`  // Laplacian variance threshold
	MinBrightness float64 `yaml:"min_brightness"` // mean luminance lower bound
	MaxBrightness float64 `yaml:"max_brightness"` // mean luminance upper bound
}

// LoadConfig loads the configuration from file, filling unset quality and
// detector values with the thresholds the service has always used.
func LoadConfig() (*Config, string, error) {
	path := ".config.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, path, err
	}
	config.ApplyDefaults()

	return config, path, nil
}

// ApplyDefaults fills zero-valued fields with the standard thresholds.
func (c *Config) ApplyDefaults() {
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	if c.Detector.ConfidenceThreshold == 0 {
		c.Detector.ConfidenceThreshold = 0.5
	}
	if c.Detector.Timeout == 0 {
		c.Detector.Timeout = 30
	}
	if c.Quality.MaxFileSize == 0 {
		c.Quality.MaxFileSize = 5 * 1024 * 1024
	}
	if c.Quality.MinImageSize == 0 {
		c.Quality.MinImageSize = 100
	}
	if c.Quality.MinSharpness == 0 {
		c.Quality.MinSharpness = 50
	}
	if c.Quality.MinBrightness == 0 {
		c.Quality.MinBrightness = 30
	}
	if c.Quality.MaxBrightness == 0 {
		c.Quality.MaxBrightness = 225
	}
}
