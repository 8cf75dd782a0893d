// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	ServerAddress   string `mapstructure:"SERVER_ADDRESS"`
	Environement    string `mapstructure:"GO_ENV"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel     string `mapstructure:"GEMINI_MODEL"`
	ChartFile       string `mapstructure:"LEDGER_CHART_FILE"`
	RetainedAccount string `mapstructure:"LEDGER_RETAINED_ACCOUNT"`
	RejectZeroTotal bool   `mapstructure:"LEDGER_REJECT_ZERO_TOTAL"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
