package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/orchestrators/quick"
)

var (
	quickCorpusDir string
	quickSeed      int64
	quickCount     int
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Generate quick-system characters from flat pools",
	RunE:  runQuick,
}

func init() {
	quickCmd.Flags().StringVar(&quickCorpusDir, "corpus", "./corpus", "corpus directory")
	quickCmd.Flags().Int64Var(&quickSeed, "seed", 0, "deterministic seed (crypto source when unset)")
	quickCmd.Flags().IntVar(&quickCount, "count", 1, "number of characters to generate")
}

func runQuick(cmd *cobra.Command, _ []string) error {
	var fallback envConfig
	if err := env.Parse(&fallback); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if !cmd.Flags().Changed("corpus") {
		quickCorpusDir = fallback.CorpusDir
	}

	set, err := corpus.LoadDir(quickCorpusDir)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	if set.Quick == nil {
		return fmt.Errorf("corpus has no quick pools document")
	}

	provider := dice.New(nil)
	if cmd.Flags().Changed("seed") {
		provider = dice.NewSeeded(quickSeed)
	}

	orc, err := quick.New(&quick.Config{Dice: provider})
	if err != nil {
		return err
	}

	for i := 0; i < quickCount; i++ {
		output, err := orc.Generate(cmd.Context(), &quick.GenerateInput{Pools: set.Quick})
		if err != nil {
			return err
		}
		if err := printJSON(cmd, output.Character); err != nil {
			return err
		}
	}
	return nil
}
