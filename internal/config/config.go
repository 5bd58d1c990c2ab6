// Package config loads the viper configuration with sane defaults.
package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Load reads an optional formscout.yaml from the working directory or
// ~/.config/formscout, applies defaults, and binds FORMSCOUT_*
// environment variables.
func Load() {
	viper.SetConfigName("formscout")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/formscout")

	viper.SetEnvPrefix("formscout")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("no config file found, using defaults")
		} else {
			log.Warn().Err(err).Msg("could not read config file")
		}
	}

	setDefaults()
}

func setDefaults() {
	// Analyzer
	viper.SetDefault("analyzer.form_selector", "form")
	viper.SetDefault("analyzer.screenshot_dir", "form_screenshots")
	viper.SetDefault("analyzer.output", "form_analysis.json")

	// Browser
	viper.SetDefault("browser.headless", true)
	viper.SetDefault("browser.width", 1920)
	viper.SetDefault("browser.height", 1080)
	viper.SetDefault("browser.nav_timeout", 30)
	viper.SetDefault("browser.profile_dir", "")

	// AI
	viper.SetDefault("ai.provider", "claude")
	viper.SetDefault("ai.model", "")
}
