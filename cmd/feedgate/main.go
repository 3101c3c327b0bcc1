package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/learnaura/feedgate/internal/router"
	"github.com/learnaura/feedgate/internal/setup"
	"github.com/learnaura/feedgate/shared/config"
	"github.com/learnaura/feedgate/shared/logger"
)

const (
	defaultPort  = "8081"
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

func main() {
	// .env is optional, used for local development
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)
	r := router.SetupRouter(deps)

	server := configureServer(r)
	logger.Log.Info("starting feed gateway", "addr", server.Addr, "api", cfg.Public.ApiBaseURL)
	log.Fatal(server.ListenAndServe())
}

func configureServer(handler http.Handler) *http.Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
