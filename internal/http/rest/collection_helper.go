package rest

import (
	"context"
	"net/http"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) CreateCollectionHelper(ctx context.Context, ownerID string, input model.CreateCollectionInput) (model.Collection, string, string, error) {
	collection, err := api.Deps.Collections.Create(ctx, ownerID, input)
	if err != nil {
		return model.Collection{}, statusForError(err), "Failed to create collection", err
	}
	return collection, values.Created, "Collection created successfully", nil
}

// AddEventHelper checks the event against the catalog before touching the
// membership set, so a typo'd event id 404s instead of polluting the store.
func (api *API) AddEventHelper(ctx context.Context, collectionID, eventID string) (model.Collection, string, string, error) {
	if _, err := api.Deps.Catalog.GetByID(ctx, eventID); err != nil {
		return model.Collection{}, statusForError(err), "Event not found", err
	}
	collection, err := api.Deps.Collections.AddEvent(ctx, collectionID, eventID)
	if err != nil {
		return model.Collection{}, statusForError(err), "Failed to add event to collection", err
	}
	return collection, values.Success, "Event added to collection", nil
}

// collectionActorAction runs a (collectionID, userID) store mutation with
// the acting user from the request context.
func (api *API) collectionActorAction(r *http.Request,
	action func(context.Context, string, string) (model.Collection, error), message string) *ServerResponse {
	tc := tracingFromRequest(r)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	collection, err := action(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		return respondWithStoreError(err, "collection action failed", &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}
