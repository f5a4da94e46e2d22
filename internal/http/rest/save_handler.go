package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/internal/save"
	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/values"
	"github.com/eventure/eventure_api/util/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (api *API) SaveRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/events/{eventID}", Handler(api.GetSaveState))
	mux.Method(http.MethodGet, "/actions/{actionID}", Handler(api.GetSaveAction))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireUser)
		r.Method(http.MethodPost, "/quick", Handler(api.QuickSave))
		r.Method(http.MethodPost, "/", Handler(api.SaveToCollection))
		r.Method(http.MethodPost, "/new", Handler(api.SaveToNewCollection))
		r.Method(http.MethodDelete, "/", Handler(api.Unsave))
	})

	return mux
}

// QuickSave saves an event into the default collection. With no collections
// at all the client gets a 404 and prompts for collection creation instead.
func (api *API) QuickSave(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.QuickSaveRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	action, collection, err := api.Deps.Saves.QuickSave(r.Context(), req.EventID)
	if err != nil {
		return respondWithStoreError(err, "quick save failed", &tc)
	}
	api.broadcastSaveUpdate(req.EventID, collection)

	return &ServerResponse{
		Message:    "Event saved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       saveResult{Action: action, Collection: collection},
	}
}

func (api *API) SaveToCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.SaveRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	action, collection, err := api.Deps.Saves.SaveToCollection(r.Context(), req.EventID, req.CollectionID)
	if err != nil {
		return respondWithStoreError(err, "save failed", &tc)
	}
	api.broadcastSaveUpdate(req.EventID, collection)

	return &ServerResponse{
		Message:    "Event saved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       saveResult{Action: action, Collection: collection},
	}
}

// SaveToNewCollection composes create-then-add. An add-stage failure is
// reported distinctly so the client knows an empty collection was created
// and can retry just the add.
func (api *API) SaveToNewCollection(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.SaveToNewCollectionRequest
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

	input := model.CreateCollectionInput{Name: req.Name, Description: req.Description}
	action, collection, err := api.Deps.Saves.SaveToNewCollection(r.Context(), userID, req.EventID, input)
	if err != nil {
		var stageErr *save.StageError
		if errors.As(err, &stageErr) {
			resp := respondWithStoreError(err, "collection created but save failed", &tc)
			resp.Data = saveResult{Action: action, Collection: collection}
			return resp
		}
		return respondWithStoreError(err, "save to new collection failed", &tc)
	}
	api.broadcastSaveUpdate(req.EventID, collection)

	return &ServerResponse{
		Message:    "Collection created and event saved",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       saveResult{Action: action, Collection: collection},
	}
}

func (api *API) Unsave(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.SaveRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	collection, err := api.Deps.Saves.Unsave(r.Context(), req.EventID, req.CollectionID)
	if err != nil {
		return respondWithStoreError(err, "unsave failed", &tc)
	}
	api.broadcastSaveUpdate(req.EventID, collection)

	return &ServerResponse{
		Message:    "Event removed",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       collection,
	}
}

// GetSaveState answers "is this event saved, and where" from current store
// state; nothing here is cached.
func (api *API) GetSaveState(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)
	eventID := chi.URLParam(r, "eventID")

	containing, err := api.Deps.Saves.CollectionsContaining(r.Context(), eventID)
	if err != nil {
		return respondWithStoreError(err, "failed to get save state", &tc)
	}
	label, err := api.Deps.Saves.SaveLabel(r.Context(), eventID)
	if err != nil {
		return respondWithStoreError(err, "failed to get save state", &tc)
	}

	state := model.SaveState{
		EventID:     eventID,
		Saved:       len(containing) > 0,
		Label:       label,
		Collections: containing,
	}
	if state.Collections == nil {
		state.Collections = []model.Collection{}
	}

	return &ServerResponse{
		Message:    "Save state retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       state,
	}
}

func (api *API) GetSaveAction(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	action, err := api.Deps.Saves.Action(chi.URLParam(r, "actionID"))
	if err != nil {
		return respondWithStoreError(err, "failed to get save action", &tc)
	}

	return &ServerResponse{
		Message:    "Save action retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       action,
	}
}

type saveResult struct {
	Action     save.Action      `json:"action"`
	Collection model.Collection `json:"collection"`
}

// broadcastSaveUpdate tells connected clients a save landed so open event
// cards can refresh their saved state.
func (api *API) broadcastSaveUpdate(eventID string, collection model.Collection) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":       websockets.MsgTypeSaveUpdate,
		"event_id":   eventID,
		"collection": collection,
	})
	if err != nil {
		log.Println("failed to marshal save update", err)
		return
	}
	go api.Deps.WebSocket.Broadcast(payload)
}
