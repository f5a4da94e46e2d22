package rest

import (
	"log"
	"net/http"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) CollectionRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListCollections))
	mux.Method(http.MethodGet, "/{id}", Handler(api.GetCollection))
	mux.Method(http.MethodGet, "/{id}/comments", Handler(api.ListCollectionComments))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireUser)
		r.Method(http.MethodPost, "/", Handler(api.CreateCollection))
		r.Method(http.MethodPatch, "/{id}", Handler(api.UpdateCollection))
		r.Method(http.MethodDelete, "/{id}", Handler(api.DeleteCollection))
		r.Method(http.MethodPost, "/{id}/events/{eventID}", Handler(api.AddEventToCollection))
		r.Method(http.MethodDelete, "/{id}/events/{eventID}", Handler(api.RemoveEventFromCollection))
		r.Method(http.MethodPost, "/{id}/like", Handler(api.LikeCollection))
		r.Method(http.MethodDelete, "/{id}/like", Handler(api.UnlikeCollection))
		r.Method(http.MethodPost, "/{id}/collaborators", Handler(api.AddCollaborator))
		r.Method(http.MethodDelete, "/{id}/collaborators/{userID}", Handler(api.RemoveCollaborator))
		r.Method(http.MethodPost, "/{id}/comments", Handler(api.AddCollectionComment))
		r.Method(http.MethodPost, "/{id}/share", Handler(api.ShareCollection))
	})

	return mux
}

func (api *API) CreateCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.CreateCollectionInput
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	collection, status, message, err := api.CreateCollectionHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       collection,
	}
}

func (api *API) ListCollections(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	collections, err := api.Deps.Collections.GetAll(r.Context())
	if err != nil {
		return respondWithStoreError(err, "failed to get collections", &tc)
	}

	return &ServerResponse{
		Message:    "Collections retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collections,
	}
}

func (api *API) GetCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)
	id := chi.URLParam(r, "id")

	collection, err := api.Deps.Collections.GetByID(r.Context(), id)
	if err != nil {
		return respondWithStoreError(err, "failed to get collection", &tc)
	}
	// Best-effort; a lost view count never fails the read.
	if viewErr := api.Deps.Collections.RecordView(r.Context(), id); viewErr != nil {
		log.Printf("[%s] failed to record collection view: %v", tc.RequestID, viewErr)
	}

	return &ServerResponse{
		Message:    "Collection retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}

func (api *API) UpdateCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.UpdateCollectionInput
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	collection, err := api.Deps.Collections.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return respondWithStoreError(err, "failed to update collection", &tc)
	}

	return &ServerResponse{
		Message:    "Collection updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}

func (api *API) DeleteCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	if err := api.Deps.Collections.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return respondWithStoreError(err, "failed to delete collection", &tc)
	}

	return &ServerResponse{
		Message:    "Collection deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) AddEventToCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	collection, status, message, err := api.AddEventHelper(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       collection,
	}
}

func (api *API) RemoveEventFromCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	collection, err := api.Deps.Collections.RemoveEvent(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithStoreError(err, "failed to remove event from collection", &tc)
	}

	return &ServerResponse{
		Message:    "Event removed from collection",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}

func (api *API) LikeCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return api.collectionActorAction(r, api.Deps.Collections.Like, "Collection liked")
}

func (api *API) UnlikeCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return api.collectionActorAction(r, api.Deps.Collections.Unlike, "Collection unliked")
}

func (api *API) AddCollaborator(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req struct {
		UserID string `json:"user_id" validate:"required"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	collection, err := api.Deps.Collections.AddCollaborator(r.Context(), chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		return respondWithStoreError(err, "failed to add collaborator", &tc)
	}

	return &ServerResponse{
		Message:    "Collaborator added",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}

func (api *API) RemoveCollaborator(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	collection, err := api.Deps.Collections.RemoveCollaborator(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		return respondWithStoreError(err, "failed to remove collaborator", &tc)
	}

	return &ServerResponse{
		Message:    "Collaborator removed",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}

func (api *API) AddCollectionComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req struct {
		Content string `json:"content" validate:"required,max=500"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	comment, err := api.Deps.Collections.AddComment(r.Context(), chi.URLParam(r, "id"), userID, req.Content)
	if err != nil {
		return respondWithStoreError(err, "failed to add comment", &tc)
	}

	return &ServerResponse{
		Message:    "Comment added",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       comment,
	}
}

func (api *API) ListCollectionComments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	comments, err := api.Deps.Collections.Comments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return respondWithStoreError(err, "failed to get comments", &tc)
	}

	return &ServerResponse{
		Message:    "Comments retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       comments,
	}
}

func (api *API) ShareCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	collection, err := api.Deps.Collections.Share(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return respondWithStoreError(err, "failed to share collection", &tc)
	}

	return &ServerResponse{
		Message:    "Share link ready",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"share_link": collection.ShareLink},
	}
}
