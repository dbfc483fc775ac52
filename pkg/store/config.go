package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the catalog engine needs: where the durable
// store lives, where the catalog text comes from, and export defaults.
type Config interface {
	BasePath() string
	Catalog() string
	PerPage() int
	CountryCode() string
	Recipient() string
}

// LoadConfig discovers a .catalogo config file (yaml implicit) and applies
// CATALOGO_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.catalogo.db")
	viper.SetDefault("catalog", "catalog.csv")
	viper.SetDefault("per-page", 30)
	viper.SetDefault("country-code", "+595")
	viper.SetDefault("recipient", "+595987334125")
	viper.SetConfigName(".catalogo")
	viper.SetEnvPrefix("CATALOGO")
	viper.AutomaticEnv()

	if override := os.Getenv("CATALOGO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Path:         viper.GetString("path"),
		CatalogPath:  viper.GetString("catalog"),
		ItemsPerPage: viper.GetInt("per-page"),
		Country:      viper.GetString("country-code"),
		Dealer:       viper.GetString("recipient"),
	}, nil
}

type fileConfig struct {
	Path         string `json:"path"`
	CatalogPath  string `json:"catalog"`
	ItemsPerPage int    `json:"per-page"`
	Country      string `json:"country-code"`
	Dealer       string `json:"recipient"`
}

func (f *fileConfig) BasePath() string {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return expanded
}

func (f *fileConfig) Catalog() string {
	return f.CatalogPath
}

func (f *fileConfig) PerPage() int {
	return f.ItemsPerPage
}

func (f *fileConfig) CountryCode() string {
	return f.Country
}

func (f *fileConfig) Recipient() string {
	return f.Dealer
}
