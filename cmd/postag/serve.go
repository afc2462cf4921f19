package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"postag/internal/common"
	"postag/internal/engine"
	"postag/internal/server"
)

var (
	serveAddr   string
	serveFilter engine.FilterOptions
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tagger as a JSON HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config: :8080)")
	serveCmd.Flags().BoolVar(&serveFilter.Nouns, "nouns", false, "add noun candidates to responses")
	serveCmd.Flags().BoolVar(&serveFilter.Stopwords, "stopwords", false, "drop stopwords from candidates")
	serveCmd.Flags().BoolVar(&serveFilter.Stem, "stem", false, "stem candidate normalized forms")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	e, err := engine.New(cfg, serveFilter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Handler(e, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			common.WARN("shutdown: %v", err)
		}
	}()

	common.INFO("listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
