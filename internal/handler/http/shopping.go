package http

import (
	"net/http"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/utils"
)

func (h *Handler) shoppingList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.services.ShoppingService.ShoppingList(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.shoppingList").Msg("error computing shopping list")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}
