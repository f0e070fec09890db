package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

var vocabFile string

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the active skill vocabulary",
	Long:  `Print the skill vocabulary used for matching, one term per line. With --file, loads and validates the given vocabulary JSON first.`,
	RunE:  runVocab,
}

func init() {
	vocabCmd.Flags().StringVar(&vocabFile, "file", "", "Path to a vocabulary JSON file to load and validate")
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(_ *cobra.Command, _ []string) error {
	terms := vocabulary.Default
	if vocabFile != "" {
		loaded, err := vocabulary.Load(vocabFile)
		if err != nil {
			return fmt.Errorf("vocabulary file is invalid: %w", err)
		}
		terms = loaded
	}

	for _, term := range terms {
		fmt.Println(term)
	}
	fmt.Printf("\n%d terms\n", len(terms))
	return nil
}
