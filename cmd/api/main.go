// cmd/api/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/config"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/gemini"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/http/routes"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/plan"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	st := store.New(cfg.Profile.Path, logger)

	// Plan generation is optional: without a key the API still serves the
	// profile endpoints.
	var planner routes.Planner
	if cfg.HasGemini() {
		client, err := gemini.New(cfg.Gemini.APIKey, gemini.WithModel(cfg.Gemini.Model))
		if err != nil {
			log.Fatalf("gemini client error: %v", err)
		}
		planner = plan.NewGenerator(client, logger)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, plan generation disabled")
	}

	s := routes.New(routes.ServerOptions{Store: st, Planner: planner, Log: logger})
	h := hlog.NewHandler(logger)(s.Router)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("starting api")
	srv := &http.Server{Addr: addr, Handler: h}
	log.Fatal(srv.ListenAndServe())
}
