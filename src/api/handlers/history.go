package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := sessionUserID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	resp, err := h.Controller.GetHistory(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}
