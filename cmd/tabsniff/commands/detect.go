/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detect.go
Description: Dialect detection command implementation for tabsniff. Reads a file,
runs the full sniffing pipeline (dialect, rows, field types, header verdict), prints
a summary, and optionally writes a JSON report.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kleascm/tabsniff/pkg/sniffer"
	"github.com/kleascm/tabsniff/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunDetect sniffs a delimited file and reports its dialect and header verdict.
func RunDetect(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 tabsniff - Dialect Detection")
	fmt.Println("===============================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for detection
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	fmt.Printf("📁 Input: %s (%d bytes)\n", path, len(data))
	fmt.Println()

	result := sniffer.New(logger.GetLogger()).Sniff(string(data))

	fmt.Printf("🎯 Field delimiter: %q\n", result.Delimiter)
	fmt.Printf("🧾 Header: %s\n", result.Header)
	fmt.Printf("📊 Rows: %d\n", len(result.Rows))
	fmt.Println()

	fmt.Println("Candidate scores:")
	for _, cs := range result.Scores {
		marker := "  "
		if cs.Dialect == result.Dialect {
			marker = "✅"
		}
		fmt.Printf("  %s %-4q score=%.4f diagnostics=%d\n",
			marker, string(cs.Dialect.FieldDelimiter), cs.Score, len(cs.Diagnostics))
	}

	if len(result.Issues) > 0 {
		fmt.Println()
		fmt.Printf("⚠️  Escaping issues under the detected dialect: %s\n", strings.Join(result.Issues, ", "))
	}

	if viper.GetBool("show_rows") {
		fmt.Println()
		for i, row := range result.Rows {
			fmt.Printf("  row %d: %q\n", i, row)
		}
	}

	if reportDir := viper.GetString("report_dir"); reportDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		written, err := utils.WriteReport(reportDir, name, result)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Println()
		fmt.Printf("💾 Report written: %s\n", written)
	}

	return nil
}
