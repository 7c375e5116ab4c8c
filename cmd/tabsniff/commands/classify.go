/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: Field classification command implementation for tabsniff. Classifies
field values given on the command line into coarse semantic types.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/tabsniff/pkg/fieldtype"
	"github.com/spf13/cobra"
)

// RunClassify prints the semantic type of each argument value.
func RunClassify(cmd *cobra.Command, args []string) error {
	fmt.Println("🏷️  tabsniff - Field Classification")
	fmt.Println("==================================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	for _, value := range args {
		t := fieldtype.Classify(value)
		if t == fieldtype.None {
			fmt.Printf("  %q -> (untyped)\n", value)
			continue
		}
		fmt.Printf("  %q -> %s\n", value, t)
	}

	return nil
}
