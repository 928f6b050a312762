package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wikiquiz/internal/db"
	"github.com/ziadkadry99/wikiquiz/internal/quiz"
	"github.com/ziadkadry99/wikiquiz/internal/server"
	"github.com/ziadkadry99/wikiquiz/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wikiquiz web server",
	Long:  `Starts the HTTP server with the quiz REST API and the embedded web frontend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		// Open database.
		dbPath := filepath.Join(cfg.DataDir, "wikiquiz.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		// Wire up the pipeline.
		store := quiz.NewStore(database)
		svc := quiz.NewService(createScraperFromConfig(cfg), createGeneratorFromConfig(cfg), store)

		srv := server.New(server.Config{
			Port:           cfg.Port,
			FrontendOrigin: cfg.FrontendOrigin,
			AllowAll:       cfg.AllowAllCORS,
		})
		quiz.RegisterRoutes(srv.Router(), svc, store)
		web.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "wikiquiz v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
