package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/utils"
)

func (h *Handler) lookupBarcode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	barcode := chi.URLParam(r, "barcode")

	product, err := h.services.LookupService.Lookup(ctx, barcode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("empty barcode provided")
			http.Error(w, "empty barcode provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProductNotFound):
			log.Err(err).Str("barcode", barcode).Msg("catalog product not found")
			http.Error(w, "catalog product not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.lookupBarcode").Msg("error looking up barcode")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, product, http.StatusOK)
}
