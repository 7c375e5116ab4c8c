/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for tabsniff. Provides dialect detection
and field classification commands over delimiter-separated text files, with
configuration management and structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/tabsniff/cmd/tabsniff/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string
	logColors  bool

	// Detection output
	reportDir string
	showRows  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabsniff",
		Short: "tabsniff - delimiter dialect sniffer for tabular text",
		Long: `tabsniff infers the formatting convention of a delimiter-separated file
from its raw text alone: which scalar separates fields, plus the fixed row separator
and escape character. It also classifies field values into coarse semantic types and
uses them to decide whether the first row is a header.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().BoolVar(&logColors, "log-colors", true, "Colorize console logs")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_colors", rootCmd.PersistentFlags().Lookup("log-colors"))

	// Add detect command
	detectCmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Detect the dialect and header of a delimited file",
		Long: `Detect the field delimiter of a delimiter-separated file, read it under the
detected dialect, classify every field, and report whether the first row looks like
a header. Detection is best-effort and never fails, whatever the input.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunDetect,
	}
	detectCmd.Flags().StringVar(&reportDir, "report-dir", "", "Write a JSON report to this directory")
	detectCmd.Flags().BoolVar(&showRows, "show-rows", false, "Print the parsed rows")
	viper.BindPFlag("report_dir", detectCmd.Flags().Lookup("report-dir"))
	viper.BindPFlag("show_rows", detectCmd.Flags().Lookup("show-rows"))
	rootCmd.AddCommand(detectCmd)

	// Add classify command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "classify [value]...",
		Short: "Classify field values into semantic types",
		Long: `Classify one or more field values into coarse semantic types (date, number,
url, uuid, ...). Values that match no type are reported as untyped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunClassify,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
