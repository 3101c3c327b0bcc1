package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/learnaura/feedgate/internal/middleware"
	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/validation"
)

func (h *Handler) DiscussionCreateHandler(w http.ResponseWriter, r *http.Request) {
	var body api.CreateDiscussionRequest
	if err := validation.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Dispatcher.CreateDiscussion(r.Context(), mw.GetCredential(r), pageParam(r), body.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) DiscussionUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateDiscussionRequest
	if err := validation.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Dispatcher.UpdateDiscussion(r.Context(), mw.GetCredential(r), pageParam(r), chi.URLParam(r, "id"), body.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DiscussionDeleteHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Dispatcher.DeleteDiscussion(r.Context(), mw.GetCredential(r), pageParam(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
