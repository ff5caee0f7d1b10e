// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/utils"
	"github.com/avoronova/craft-stash/models"
)

func (h *Handler) listSupplies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query := supplyQueryFromRequest(r)

	list, err := h.services.SupplyService.List(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSupplies").Msg("error listing supplies")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) createSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var supply models.Supply
	if err := json.NewDecoder(r.Body).Decode(&supply); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	supply.UserID = userID

	created, err := h.services.SupplyService.Create(ctx, supply)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid supply data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.createSupply").Msg("error creating supply")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	supplyID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid supply id")
		http.Error(w, "invalid supply id", http.StatusBadRequest)
		return
	}

	supply, err := h.services.SupplyService.Get(ctx, userID, supplyID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSupplyNotFound):
			log.Err(err).Msg("supply not found")
			http.Error(w, "supply not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.getSupply").Msg("error getting supply")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, supply, http.StatusOK)
}

func (h *Handler) updateSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	supplyID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid supply id")
		http.Error(w, "invalid supply id", http.StatusBadRequest)
		return
	}

	var supply models.Supply
	if err := json.NewDecoder(r.Body).Decode(&supply); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	supply.ID = supplyID
	supply.UserID = userID

	updated, err := h.services.SupplyService.Update(ctx, supply)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid supply data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrSupplyNotFound):
			log.Err(err).Msg("supply not found")
			http.Error(w, "supply not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateSupply").Msg("error updating supply")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	supplyID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid supply id")
		http.Error(w, "invalid supply id", http.StatusBadRequest)
		return
	}

	if err := h.services.SupplyService.Delete(ctx, userID, supplyID); err != nil {
		switch {
		case errors.Is(err, store.ErrSupplyNotFound):
			log.Err(err).Msg("supply not found")
			http.Error(w, "supply not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteSupply").Msg("error deleting supply")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// supplyQueryFromRequest builds a supply list query from the request's URL
// parameters. Unknown sort columns and directions are normalised to defaults
// by the service layer, so no validation errors are produced here.
func supplyQueryFromRequest(r *http.Request) models.SupplyQuery {
	values := r.URL.Query()

	query := models.SupplyQuery{
		Q:          values.Get("q"),
		Categories: values["category"],
		Units:      values["unit"],
		Color:      values.Get("color"),
		Tag:        values.Get("tag"),
		SortBy:     values.Get("sort"),
		SortDir:    values.Get("dir"),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(values.Get("page_size")); err == nil {
		query.PageSize = pageSize
	}

	return query
}

// idURLParam parses the named chi URL parameter as a positive int64.
func idURLParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
