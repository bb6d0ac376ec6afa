package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	IndexModeSuccesses = "successes"
	IndexModeFiles     = "files"
)

const (
	EnvLayoutDir = "MAGLAYOUT_LAYOUT_DIR"
	EnvImageDir  = "MAGLAYOUT_IMAGE_DIR"
	EnvAddr      = "MAGLAYOUT_ADDR"
	EnvSchedule  = "MAGLAYOUT_SCHEDULE"
)

type Config struct {
	// LayoutDir directory with the xml annotation files
	LayoutDir string `yaml:"layoutDir"`
	// ImageDir directory with one image folder per category
	ImageDir          string `yaml:"imageDir"`
	IndexMode         string `yaml:"indexMode"`
	NormalizeKeywords bool   `yaml:"normalizeKeywords"`
	// Addr http address for reports and metrics
	Addr string `yaml:"addr"`
	// Schedule cron spec for rewalks, when serving
	Schedule string `yaml:"schedule"`
}

// ConfigError an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func defaultConfig() *Config {
	return &Config{
		IndexMode: IndexModeSuccesses,
		Addr:      ":8080",
		Schedule:  "@every 1h",
	}
}

// Load a config from yaml bytes
func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = defaultConfig()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	return conf, conf.Validate()
}

// Get a config file, values from the environment or a .env file take precedence
func Get(filename string) (conf *Config, err error) {
	// a missing .env is fine
	_ = godotenv.Load()
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	conf = defaultConfig()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	conf.applyEnv()
	return conf, conf.Validate()
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvLayoutDir: &c.LayoutDir,
		EnvImageDir:  &c.ImageDir,
		EnvAddr:      &c.Addr,
		EnvSchedule:  &c.Schedule,
	} {
		if value := os.Getenv(env); value != "" {
			*field = value
		}
	}
}

func (c *Config) Validate() error {
	if c.LayoutDir == "" {
		return &ConfigError{Field: "layoutDir", Message: "layout directory is required"}
	}
	if c.ImageDir == "" {
		return &ConfigError{Field: "imageDir", Message: "image directory is required"}
	}
	switch c.IndexMode {
	case IndexModeSuccesses, IndexModeFiles:
	default:
		return &ConfigError{Field: "indexMode", Message: "must be " + IndexModeSuccesses + " or " + IndexModeFiles + ", got " + c.IndexMode}
	}
	return nil
}
