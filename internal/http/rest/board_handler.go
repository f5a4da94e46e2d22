package rest

import (
	"net/http"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) BoardRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListBoards))

	return mux
}

// ListBoards merges the curated seeds with the user's collections as an
// explicitly tagged union. The kind discriminant is the only thing a client
// may branch on; the two variants share no struct.
func (api *API) ListBoards(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	collections, err := api.Deps.Collections.GetAll(r.Context())
	if err != nil {
		return respondWithStoreError(err, "failed to get collections", &tc)
	}

	cards := make([]model.BoardCard, 0, len(api.Deps.Curated)+len(collections))
	for i := range api.Deps.Curated {
		cards = append(cards, model.BoardCard{
			Kind:    model.BoardKindCurated,
			Curated: &api.Deps.Curated[i],
		})
	}
	for i := range collections {
		cards = append(cards, model.BoardCard{
			Kind:       model.BoardKindUser,
			Collection: &collections[i],
		})
	}

	return &ServerResponse{
		Message:    "Boards retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       cards,
	}
}
