package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wikiquiz/internal/db"
	"github.com/ziadkadry99/wikiquiz/internal/quiz"
	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

var generateSave bool

var generateCmd = &cobra.Command{
	Use:   "generate <wikipedia-url>",
	Short: "Generate a quiz for one Wikipedia page and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pageURL := args[0]
		if !scraper.IsWikipediaURL(pageURL) {
			return fmt.Errorf("%q is not a Wikipedia URL", pageURL)
		}

		sc := createScraperFromConfig(cfg)
		gen := createGeneratorFromConfig(cfg)
		ctx := context.Background()

		if generateSave {
			database, err := db.Open(filepath.Join(cfg.DataDir, "wikiquiz.db"))
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			svc := quiz.NewService(sc, gen, quiz.NewStore(database))
			result, err := svc.GenerateFromURL(ctx, pageURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved quiz id=%d\n", result.ID)
			return printJSON(result)
		}

		article, err := sc.Scrape(ctx, pageURL)
		if err != nil {
			return fmt.Errorf("scraping %s: %w", pageURL, err)
		}
		generated, err := gen.Generate(ctx, article)
		if err != nil {
			return fmt.Errorf("generating quiz: %w", err)
		}
		return printJSON(generated)
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "persist the quiz to the database")
	rootCmd.AddCommand(generateCmd)
}
