package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := sessionUserID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	resp, err := h.Controller.GetPortfolio(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}
