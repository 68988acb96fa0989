package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finance/src/schemas"
	"finance/src/utils"
)

// GetQuote serves GET /quote?symbol=XXX.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.Controller.GetQuote(ctx, r.URL.Query().Get("symbol"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}

// PostQuote serves POST /quote with the symbol in the body.
func (h *Handler) PostQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	req := new(schemas.QuoteRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed request body"))
		return
	}

	resp, err := h.Controller.GetQuote(ctx, req.Symbol)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}
