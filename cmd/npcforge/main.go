// Package main is the entry point for the npcforge CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "npcforge",
	Short: "Random tabletop character generator",
	Long: `npcforge rolls fully-populated tabletop characters from a declarative
content corpus: race, gender, name, class, background, occupation,
personality, and a multi-stage biography.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(quickCmd)
}
