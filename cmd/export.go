package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wikiquiz/internal/db"
	"github.com/ziadkadry99/wikiquiz/internal/quiz"
)

var exportCmd = &cobra.Command{
	Use:   "export <quiz-id>",
	Short: "Render a stored quiz as a standalone HTML page on stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quiz id %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "wikiquiz.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		result, err := quiz.NewStore(database).GetByID(cmd.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("quiz %d not found", id)
		}
		if err != nil {
			return err
		}

		return quiz.RenderHTML(result, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
