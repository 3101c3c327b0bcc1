package handler

import (
	"encoding/json"
	"net/http"

	"github.com/learnaura/feedgate/internal/dispatcher"
	"github.com/learnaura/feedgate/internal/feedcache"
	"github.com/learnaura/feedgate/internal/markdown"
	"github.com/learnaura/feedgate/shared/api"
	internal_errors "github.com/learnaura/feedgate/shared/errors"
	"github.com/learnaura/feedgate/shared/logger"
)

type Handler struct {
	Cache         *feedcache.Cache
	Dispatcher    *dispatcher.Dispatcher
	TextProcessor *markdown.TextProcessor
}

func New(cache *feedcache.Cache, disp *dispatcher.Dispatcher, textProcessor *markdown.TextProcessor) *Handler {
	return &Handler{
		Cache:         cache,
		Dispatcher:    disp,
		TextProcessor: textProcessor,
	}
}

func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("response encoding failed", "component", "handler", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, internal_errors.StatusCode(err), api.ErrorResponse{Message: err.Error()})
}
