package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config keys understood in .gratitude.yaml and as GRATITUDE_* env vars.
const (
	KeyPath       = "path"
	KeyLocale     = "locale"
	KeyCategories = "categories"
	KeyDebug      = "debug"
	KeyLogFile    = "log_file"
)

// Config describes where and how the journal is stored.
type Config interface {
	BasePath() string
	Locale() string
	Categories() []string
	Debug() bool
	LogFile() string
}

// LoadConfig reads .gratitude.yaml from GRATITUDE_CONFIG_PATH, the working
// directory or the home directory, layered under GRATITUDE_* env vars.
func LoadConfig() (Config, error) {
	viper.SetDefault(KeyPath, "~/.gratitude.db")
	viper.SetDefault(KeyLocale, "de-DE")
	viper.SetDefault(KeyLogFile, "~/.gratitude.log")
	viper.SetConfigName(".gratitude") // .yaml is implicit
	viper.SetEnvPrefix("GRATITUDE")
	viper.AutomaticEnv()

	if override := os.Getenv("GRATITUDE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(viper.GetString(KeyLogFile))
	if err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &FileConfig{
		Path:        path,
		Lang:        viper.GetString(KeyLocale),
		Categorized: viper.GetStringSlice(KeyCategories),
		Verbose:     viper.GetBool(KeyDebug),
		Log:         logFile,
	}, nil
}

// ConfigFileUsed reports the config file viper loaded, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// FileConfig is the resolved configuration. It is exported so callers and
// tests can construct one directly.
type FileConfig struct {
	Path        string   `json:"path"`
	Lang        string   `json:"locale"`
	Categorized []string `json:"categories,omitempty"`
	Verbose     bool     `json:"debug"`
	Log         string   `json:"log_file"`
}

func (f *FileConfig) BasePath() string     { return f.Path }
func (f *FileConfig) Locale() string       { return f.Lang }
func (f *FileConfig) Categories() []string { return f.Categorized }
func (f *FileConfig) Debug() bool          { return f.Verbose }
func (f *FileConfig) LogFile() string      { return f.Log }
