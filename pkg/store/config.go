package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for durable storage.
type Config interface {
	BasePath() string
}

// LoadConfig discovers configuration: a .ponder file in the working directory
// (or PONDER_CONFIG_PATH), PONDER_* environment variables, then defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ponder.db")
	viper.SetConfigName(".ponder") // .yaml is implicit
	viper.SetEnvPrefix("PONDER")
	viper.AutomaticEnv()

	if override := os.Getenv("PONDER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// StaticConfig pins storage to a fixed directory, used by tests and by
// callers that already know where state lives.
func StaticConfig(path string) Config {
	return &fileConfig{Path: path}
}
