package http

import (
	"context"

	"github.com/able-wong/firekit/internal/config"
	"github.com/able-wong/firekit/internal/docstore"
	"github.com/able-wong/firekit/internal/logger"
)

// CredentialVerifier introspects bearer tokens for the optional-auth
// middleware. *identity.Verifier satisfies it.
type CredentialVerifier interface {
	Lookup(ctx context.Context, token string) (string, error)
}

// Completer produces text completions. *ai.Completer satisfies it.
type Completer interface {
	Model() string
	Complete(ctx context.Context, prompt string) (string, error)
	Stream(ctx context.Context, prompt string, fn func(delta string) error) error
}

// Dependencies carries everything the handlers call out to. Verifier,
// Completer and WebConfig are optional; the routes degrade gracefully
// when they are absent.
type Dependencies struct {
	Store     docstore.Store
	Verifier  CredentialVerifier
	Completer Completer
	WebConfig *config.WebConfig
	Version   string
}

type Handler struct {
	store     docstore.Store
	verifier  CredentialVerifier
	completer Completer

	webConfig *config.WebConfig
	version   string

	logger *logger.Logger
}

func NewHandler(deps Dependencies, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:     deps.Store,
		verifier:  deps.Verifier,
		completer: deps.Completer,
		webConfig: deps.WebConfig,
		version:   deps.Version,
		logger:    logger,
	}
}
