package main

import (
	"net/http"
	"os"
	"time"

	"gomokusimul/internal/api"
	"gomokusimul/internal/broadcast"
	"gomokusimul/internal/config"
	"gomokusimul/internal/game"
	"gomokusimul/internal/ws"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg := config.Load()

	// Initialize layers
	directory := game.NewDirectory()
	hub := broadcast.NewHub()
	wsHandler := ws.NewHandler(directory, hub, cfg.AllowedOrigin)
	apiHandler := api.NewHandler(directory)

	// Setup routes
	mux := http.NewServeMux()
	wsHandler.RegisterRoutes(mux)
	apiHandler.RegisterRoutes(mux)

	server := api.CORSMiddleware(mux, cfg.AllowedOrigin)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, server); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
