package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/units"
	"github.com/avoronova/craft-stash/internal/utils"
	"github.com/avoronova/craft-stash/models"
)

func (h *Handler) convertUnits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	values := r.URL.Query()
	from := values.Get("from")
	to := values.Get("to")

	value, err := strconv.ParseFloat(values.Get("value"), 64)
	if err != nil {
		log.Err(err).Msg("invalid conversion value")
		http.Error(w, "invalid conversion value", http.StatusBadRequest)
		return
	}

	result, err := units.Convert(value, from, to)
	if err != nil {
		switch {
		case errors.Is(err, units.ErrUnknownUnit) || errors.Is(err, units.ErrIncompatibleUnits):
			log.Err(err).Str("from", from).Str("to", to).Msg("conversion rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.convertUnits").Msg("error converting units")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Conversion{
		Value:  value,
		From:   from,
		To:     to,
		Result: result,
	}, http.StatusOK)
}
