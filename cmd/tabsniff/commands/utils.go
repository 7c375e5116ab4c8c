/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the tabsniff commands. Provides common
configuration loading and logger setup used across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/tabsniff/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment.
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("TABSNIFF")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger from the loaded configuration.
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		Timestamp: true,
		Colors:    viper.GetBool("log_colors"),
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}
