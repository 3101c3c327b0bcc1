package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/learnaura/feedgate/internal/middleware"
	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/validation"
)

func (h *Handler) ReplyCreateHandler(w http.ResponseWriter, r *http.Request) {
	var body api.CreateReplyRequest
	if err := validation.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Dispatcher.CreateReply(r.Context(), mw.GetCredential(r), pageParam(r), body.DiscussionId, body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) ReplyUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateReplyRequest
	if err := validation.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Dispatcher.UpdateReply(r.Context(), mw.GetCredential(r), pageParam(r), chi.URLParam(r, "id"), body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ReplyDeleteHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Dispatcher.DeleteReply(r.Context(), mw.GetCredential(r), pageParam(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
