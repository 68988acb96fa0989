package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finance/src/schemas"
	"finance/src/utils"
)

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := sessionUserID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.TradeRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed request body"))
		return
	}

	resp, err := h.Controller.Buy(ctx, userID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) BuyForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := sessionUserID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	resp, err := h.Controller.GetBuyForm(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := sessionUserID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.TradeRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed request body"))
		return
	}

	resp, err := h.Controller.Sell(ctx, userID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) SellForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := sessionUserID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	resp, err := h.Controller.GetSellForm(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resp, http.StatusOK)
}
