package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) EventRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListEvents))
	mux.Method(http.MethodGet, "/{id}", Handler(api.GetEvent))

	return mux
}

// ListEvents answers the catalog queries: ?ids= for a subset, ?q= for
// free-text search, category/price/location params for structured filters,
// and the full catalog otherwise. All results keep catalog order.
func (api *API) ListEvents(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)
	ctx := r.Context()
	params := r.URL.Query()

	if ids := params.Get("ids"); ids != "" {
		events, err := api.Deps.Catalog.GetByIDs(ctx, strings.Split(ids, ","))
		if err != nil {
			return respondWithStoreError(err, "failed to get events", &tc)
		}
		return &ServerResponse{
			Message:    "Events fetched successfully",
			Status:     values.Success,
			StatusCode: util.StatusCode(values.Success),
			Data:       events,
		}
	}

	if q := params.Get("q"); q != "" {
		events, current, err := api.Deps.Searcher.Search(ctx, q)
		if err != nil {
			return respondWithStoreError(err, "search failed", &tc)
		}
		if !current {
			return &ServerResponse{
				Message:    "Search superseded by a newer query",
				Status:     values.Success,
				StatusCode: util.StatusCode(values.Success),
			}
		}
		return &ServerResponse{
			Message:    "Found " + strconv.Itoa(len(events)) + " events",
			Status:     values.Success,
			StatusCode: util.StatusCode(values.Success),
			Data:       events,
		}
	}

	filters, filterErr := eventFiltersFromQuery(params)
	if filterErr != nil {
		return respondWithError(filterErr, "invalid filter parameters", values.BadRequestBody, &tc)
	}
	events, err := api.Deps.Catalog.Filter(ctx, filters)
	if err != nil {
		return respondWithStoreError(err, "failed to get events", &tc)
	}

	return &ServerResponse{
		Message:    "Events fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       events,
	}
}

func (api *API) GetEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	event, err := api.Deps.Catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return respondWithStoreError(err, "failed to get event", &tc)
	}

	return &ServerResponse{
		Message:    "Event retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       event,
	}
}
