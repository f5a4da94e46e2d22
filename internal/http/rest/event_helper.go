package rest

import (
	"net/url"
	"strconv"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/pkg/errors"
)

// eventFiltersFromQuery builds the conjunctive filter from query params.
// Absent params stay unset so the catalog does not apply them.
func eventFiltersFromQuery(params url.Values) (model.EventFilters, error) {
	var filters model.EventFilters

	if cats := params["category"]; len(cats) > 0 {
		filters.Category = cats
	}
	filters.Location = params.Get("location")

	minStr, maxStr := params.Get("price_min"), params.Get("price_max")
	if minStr != "" || maxStr != "" {
		priceRange := [2]float64{0, maxPriceBound}
		if minStr != "" {
			min, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				return model.EventFilters{}, errors.Wrap(err, "parsing price_min")
			}
			priceRange[0] = min
		}
		if maxStr != "" {
			max, err := strconv.ParseFloat(maxStr, 64)
			if err != nil {
				return model.EventFilters{}, errors.Wrap(err, "parsing price_max")
			}
			priceRange[1] = max
		}
		filters.PriceRange = &priceRange
	}

	return filters, nil
}

const maxPriceBound = 1 << 30
