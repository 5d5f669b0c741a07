package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/progress"
	"github.com/docweave/docweave/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with live reload",
	Long: `Builds the documentation site, serves it locally, and rebuilds it
whenever the markdown sources change. Connected pages reload
automatically over a websocket. Also exposes the navigation API
(/api/nav, /api/suggest) used for client-side next-step suggestions.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Duration("poll", 2*time.Second, "how often to check the docs tree for changes")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	poll, _ := cmd.Flags().GetDuration("poll")
	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")

	// Initial build.
	gen := newGenerator(cfg)
	result, err := gen.Generate()
	if err != nil {
		return err
	}
	fmt.Printf("Built %d pages into %s\n", result.PageCount, cfg.OutputDir)

	srv := server.New(server.Config{
		Port:     cfg.Port,
		SiteDir:  cfg.OutputDir,
		AllowAll: allowAll,
	}, cfg.Title, cfg.Nav, nil)
	srv.Reload().Broadcast(result.BuildID)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Rebuild on markdown changes; the watcher runs until shutdown.
	go server.Watch(ctx, cfg.DocsDir, cfg.Include, cfg.Exclude, poll, func() {
		rebuildGen := newGenerator(cfg)
		rebuildGen.Reporter = progress.NopReporter{}
		res, err := rebuildGen.Generate()
		if err != nil {
			log.Printf("rebuild failed: %v", err)
			return
		}
		log.Printf("rebuilt %d pages (build %s)", res.PageCount, res.BuildID)
		srv.Reload().Broadcast(res.BuildID)
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	fmt.Printf("Serving documentation at http://localhost:%d\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop.")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
