/**
 * @description
 * This file handles the configuration for the payctl CLI.
 * It uses the Viper library to read settings from environment variables or a .env file.
 *
 * @dependencies
 * - github.com/spf13/viper: For configuration management.
 */
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config stores the connection settings for the payment service.
type Config struct {
	PaymentBaseURL  string `mapstructure:"PAYMENT_BASE_URL"`
	PaymentSecret   string `mapstructure:"PAYMENT_SECRET"`
	PaymentPassword string `mapstructure:"PAYMENT_PASSWORD"`
	PaymentLocale   string `mapstructure:"PAYMENT_LOCALE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PAYMENT_BASE_URL", "http://localhost:5012/")
	viper.SetDefault("PAYMENT_SECRET", "secret")
	viper.SetDefault("PAYMENT_PASSWORD", "")
	viper.SetDefault("PAYMENT_LOCALE", "en")

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("PAYMENT_BASE_URL")
	_ = viper.BindEnv("PAYMENT_SECRET")
	_ = viper.BindEnv("PAYMENT_PASSWORD")
	_ = viper.BindEnv("PAYMENT_LOCALE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
