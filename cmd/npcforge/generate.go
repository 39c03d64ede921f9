package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/engine/life"
	"github.com/hearthfire/npcforge/internal/engine/names"
	"github.com/hearthfire/npcforge/internal/engine/npc"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/orchestrators/character"
	"github.com/hearthfire/npcforge/internal/pkg/idgen"
	internalredis "github.com/hearthfire/npcforge/internal/redis"
	characterrepo "github.com/hearthfire/npcforge/internal/repositories/character"
)

// envConfig carries the environment fallbacks for flags left unset
type envConfig struct {
	CorpusDir string   `env:"NPCFORGE_CORPUS_DIR" envDefault:"./corpus"`
	RedisAddr string   `env:"NPCFORGE_REDIS_ADDR" envDefault:"localhost:6379"`
	Books     []string `env:"NPCFORGE_BOOKS" envSeparator:","`
}

var (
	corpusDir      string
	bookCodes      []string
	seed           int64
	count          int
	raceFlag       string
	subraceFlag    string
	classFlag      string
	backgroundFlag string
	nameFlag       string
	lockFlags      []string
	ethnicityMode  string
	raceExponent   float64
	useRedis       bool
	redisAddr      string
	entityID       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more full characters",
	Long: `Generate rolls complete characters from the corpus directory. Manual
override flags pin individual fields; lock flags reuse fields from the
previous record (the prior iteration, or the --entity session record when
the session store is enabled).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&corpusDir, "corpus", "./corpus", "corpus directory")
	generateCmd.Flags().StringSliceVar(&bookCodes, "books", nil, "active source book codes")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "deterministic seed (crypto source when unset)")
	generateCmd.Flags().IntVar(&count, "count", 1, "number of characters to generate")
	generateCmd.Flags().StringVar(&raceFlag, "race", "", "pin the race")
	generateCmd.Flags().StringVar(&subraceFlag, "subrace", "", "pin the subrace")
	generateCmd.Flags().StringVar(&classFlag, "class", "", "pin the class")
	generateCmd.Flags().StringVar(&backgroundFlag, "background", "", "pin the background")
	generateCmd.Flags().StringVar(&nameFlag, "name", "", "pin the full name")
	generateCmd.Flags().StringSliceVar(&lockFlags, "lock", nil, "fields to reuse from the previous record (or 'all')")
	generateCmd.Flags().StringVar(&ethnicityMode, "ethnicity-mode", string(entities.EthnicityFantasy), "human name flavor: fantasy or real")
	generateCmd.Flags().Float64Var(&raceExponent, "race-exponent", entities.RaceExponentFlat, "race weight exponent: 1, 1.5, or 2")
	generateCmd.Flags().BoolVar(&useRedis, "redis", false, "store generated records in the redis session store")
	generateCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis endpoint")
	generateCmd.Flags().StringVar(&entityID, "entity", "", "session record ID to reuse locked fields from")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	var fallback envConfig
	if err := env.Parse(&fallback); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if !cmd.Flags().Changed("corpus") {
		corpusDir = fallback.CorpusDir
	}
	if !cmd.Flags().Changed("books") && len(fallback.Books) > 0 {
		bookCodes = fallback.Books
	}
	if !cmd.Flags().Changed("redis-addr") {
		redisAddr = fallback.RedisAddr
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	set, err := corpus.LoadDir(corpusDir)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	provider := dice.New(nil)
	if cmd.Flags().Changed("seed") {
		provider = dice.NewSeeded(seed)
	}

	eng, err := engine.New(&engine.Config{Dice: provider})
	if err != nil {
		return err
	}
	composer, err := names.New(&names.Config{Dice: provider, Engine: eng})
	if err != nil {
		return err
	}
	npcGen, err := npc.New(&npc.Config{Dice: provider})
	if err != nil {
		return err
	}
	lifeGen, err := life.New(&life.Config{
		Dice:   provider,
		Engine: eng,
		Names:  composer,
		NPC:    npcGen,
	})
	if err != nil {
		return err
	}

	var repo characterrepo.Repository
	if useRedis {
		client, err := internalredis.NewClient(redisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		repo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			return err
		}
	}

	bus := events.NewBus()
	bus.SubscribeFunc(character.TopicCharacterGenerated, 0, func(_ context.Context, _ events.Event) error {
		slog.Debug("character generated")
		return nil
	})

	orc, err := character.New(&character.Config{
		Dice:          provider,
		Engine:        eng,
		Names:         composer,
		NPC:           npcGen,
		Life:          lifeGen,
		IDGenerator:   idgen.NewUUID("char"),
		EventBus:      bus,
		CharacterRepo: repo,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var previous *entities.CharacterRecord
	if entityID != "" {
		if repo == nil {
			return fmt.Errorf("--entity requires --redis")
		}
		fetched, err := orc.GetCharacter(ctx, &character.GetCharacterInput{ID: entityID})
		if err != nil {
			return fmt.Errorf("failed to load session record: %w", err)
		}
		previous = fetched.Record
	}

	for i := 0; i < count; i++ {
		output, err := orc.GenerateAll(ctx, &character.GenerateAllInput{
			Request: character.Request{
				Corpus:  set,
				Books:   bookCodes,
				Options: opts,
			},
			Previous: previous,
			Store:    useRedis,
		})
		if err != nil {
			return err
		}
		previous = output.Record

		if err := printJSON(cmd, output.Record); err != nil {
			return err
		}
	}
	return nil
}

func buildOptions() (*entities.Options, error) {
	opts := entities.NewOptions()
	opts.Race = raceFlag
	opts.Subrace = subraceFlag
	opts.Class = classFlag
	opts.Background = backgroundFlag
	opts.Name = nameFlag

	switch mode := entities.EthnicityMode(ethnicityMode); mode {
	case entities.EthnicityFantasy, entities.EthnicityRealWorld:
		opts.EthnicityMode = mode
	default:
		return nil, fmt.Errorf("unknown ethnicity mode %q", ethnicityMode)
	}

	if !entities.ValidRaceExponent(raceExponent) {
		return nil, fmt.Errorf("race exponent must be 1, 1.5, or 2, got %g", raceExponent)
	}
	opts.RaceExponent = raceExponent

	for _, lock := range lockFlags {
		if lock == "all" {
			opts.Locks.LockAll()
			continue
		}
		matched := false
		for _, f := range entities.Fields() {
			if string(f) == lock {
				opts.Locks[f] = true
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("unknown lock field %q", lock)
		}
	}
	return opts, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render record: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
