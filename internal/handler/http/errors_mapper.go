package http

import (
	"errors"
	"net/http"

	"github.com/able-wong/firekit/internal/ai"
	"github.com/able-wong/firekit/internal/docstore"
	"github.com/able-wong/firekit/internal/identity"
)

var errorStatusMap = map[error]int{
	docstore.ErrInvalidName:  http.StatusBadRequest,
	docstore.ErrInvalidPath:  http.StatusBadRequest,
	docstore.ErrInvalidQuery: http.StatusBadRequest,

	docstore.ErrUnauthorized:    http.StatusUnauthorized,
	docstore.ErrNotFound:        http.StatusNotFound,
	docstore.ErrRemoteOperation: http.StatusBadGateway,

	identity.ErrInvalidCredential: http.StatusUnauthorized,
	identity.ErrNotValidated:      http.StatusUnauthorized,

	ai.ErrCompletionProvider: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
