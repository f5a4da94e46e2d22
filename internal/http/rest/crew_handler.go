package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/values"
	"github.com/eventure/eventure_api/util/websockets"
	"github.com/go-chi/chi/v5"
)

func (api *API) CrewRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListCrews))
	mux.Method(http.MethodGet, "/{crewID}", Handler(api.GetCrew))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireUser)
		r.Method(http.MethodPost, "/", Handler(api.CreateCrew))
		r.Method(http.MethodPost, "/{crewID}/join", Handler(api.JoinCrew))
		r.Method(http.MethodPost, "/{crewID}/leave", Handler(api.LeaveCrew))
		r.Method(http.MethodGet, "/mine", Handler(api.ListMyCrews))
	})

	return mux
}

func (api *API) CreateCrew(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req struct {
		model.CreateCrewInput
		model.JoinCrewRequest
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req.CreateCrewInput); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req.JoinCrewRequest); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	crew, status, message, err := api.CreateCrewHelper(r.Context(), req.CreateCrewInput,
		crewMemberFromRequest(userID, req.JoinCrewRequest))
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       crew,
	}
}

func (api *API) ListCrews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	crews, err := api.Deps.Crews.Filter(r.Context(), crewFiltersFromQuery(r.URL.Query()))
	if err != nil {
		return respondWithStoreError(err, "failed to get crews", &tc)
	}

	return &ServerResponse{
		Message:    "Crews retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       crews,
	}
}

func (api *API) ListMyCrews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	crews, err := api.Deps.Crews.GetUserCrews(r.Context(), userID)
	if err != nil {
		return respondWithStoreError(err, "failed to get crews", &tc)
	}

	return &ServerResponse{
		Message:    "Crews retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       crews,
	}
}

func (api *API) GetCrew(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	crew, err := api.Deps.Crews.GetByID(r.Context(), chi.URLParam(r, "crewID"))
	if err != nil {
		return respondWithStoreError(err, "failed to get crew", &tc)
	}

	return &ServerResponse{
		Message:    "Crew retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       crew,
	}
}

// JoinCrew appends the member atomically; a full crew is a 409.
func (api *API) JoinCrew(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.JoinCrewRequest
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

	crew, err := api.Deps.Crews.Join(r.Context(), chi.URLParam(r, "crewID"),
		crewMemberFromRequest(userID, req))
	if err != nil {
		return respondWithStoreError(err, "failed to join crew", &tc)
	}
	api.broadcastCrewUpdate(crew)

	return &ServerResponse{
		Message:    "Joined crew",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       crew,
	}
}

func (api *API) LeaveCrew(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	crew, err := api.Deps.Crews.Leave(r.Context(), chi.URLParam(r, "crewID"), userID)
	if err != nil {
		return respondWithStoreError(err, "failed to leave crew", &tc)
	}
	api.broadcastCrewUpdate(crew)

	return &ServerResponse{
		Message:    "Left crew",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       crew,
	}
}

func (api *API) broadcastCrewUpdate(crew model.Crew) {
	payload, err := json.Marshal(map[string]interface{}{
		"type": websockets.MsgTypeCrewUpdate,
		"crew": crew,
	})
	if err != nil {
		log.Println("failed to marshal crew update", err)
		return
	}
	go api.Deps.WebSocket.Broadcast(payload)
}
