package main

import (
	"fmt"

	"github.com/able-wong/firekit/internal/ai"
	"github.com/able-wong/firekit/internal/config"
	"github.com/able-wong/firekit/internal/docstore"
	myHTTP "github.com/able-wong/firekit/internal/handler/http"
	"github.com/able-wong/firekit/internal/identity"
	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("firekit-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// credentials and blobs stay out of the logs
	log.Debug().
		Fields(logger.Normalize(map[string]any{
			"address":     cfg.Server.Address,
			"projectId":   cfg.ProjectID,
			"storeURL":    cfg.Store.BaseURL,
			"identityURL": cfg.Identity.BaseURL,
			"aiModel":     cfg.AI.Model,
		})).
		Msg("received configs")

	store, err := docstore.NewClient(cfg.Store, cfg.ProjectID, cfg.Store.Token, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store client")
	}

	verifier, err := identity.NewVerifier(cfg.Identity, cfg.Web.APIKey, "", log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity verifier")
	}

	deps := myHTTP.Dependencies{
		Store:    store,
		Verifier: verifier,
		Version:  cfg.App.Version,
	}

	if webCfg, err := cfg.GetWebConfig(); err == nil {
		deps.WebConfig = &webCfg
	} else {
		log.Debug().Msg("no web config blob; demo page renders without one")
	}

	if cfg.AI.APIKey != "" {
		completer, err := ai.NewCompleter(cfg.AI, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating completion client")
		}
		deps.Completer = completer
	} else {
		log.Info().Msg("no completion API key; /api/ai/complete responds 503")
	}

	handler := myHTTP.NewHandler(deps, log)

	srv, err := server.NewServer(handler.Init(cfg.Server.AllowedOrigins), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
