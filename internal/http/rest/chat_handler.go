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

func (api *API) ChatRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Route("/", func(r chi.Router) {
		r.Use(api.RequireUser)
		r.Method(http.MethodGet, "/", Handler(api.ListChats))
		r.Method(http.MethodGet, "/{chatID}", Handler(api.GetChat))
		r.Method(http.MethodPost, "/", Handler(api.CreateChat))
		r.Method(http.MethodDelete, "/{chatID}", Handler(api.DeleteChat))
		r.Method(http.MethodPost, "/messages", Handler(api.SendChatMessage))
	})

	return mux
}

func (api *API) ListChats(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	chats, err := api.Deps.Chats.GetAll(r.Context())
	if err != nil {
		return respondWithStoreError(err, "failed to get chats", &tc)
	}

	return &ServerResponse{
		Message:    "Chats retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       chats,
	}
}

func (api *API) GetChat(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	chat, err := api.Deps.Chats.GetByID(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		return respondWithStoreError(err, "failed to get chat", &tc)
	}

	return &ServerResponse{
		Message:    "Chat retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       chat,
	}
}

func (api *API) CreateChat(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req struct {
		Title string `json:"title" validate:"required,max=50"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	chat, err := api.Deps.Chats.Create(r.Context(), req.Title)
	if err != nil {
		return respondWithStoreError(err, "failed to create chat", &tc)
	}

	return &ServerResponse{
		Message:    "Chat created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       chat,
	}
}

func (api *API) DeleteChat(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	if err := api.Deps.Chats.Delete(r.Context(), chi.URLParam(r, "chatID")); err != nil {
		return respondWithStoreError(err, "failed to delete chat", &tc)
	}

	return &ServerResponse{
		Message:    "Chat deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

// SendChatMessage appends the user's message and the assistant reply, then
// pushes the reply to the chat's websocket subscribers.
func (api *API) SendChatMessage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.ChatInput
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	chat, reply, err := api.Deps.Chats.SendMessage(r.Context(), req)
	if err != nil {
		return respondWithStoreError(err, "failed to send message", &tc)
	}

	if payload, marshalErr := json.Marshal(map[string]interface{}{
		"type":    websockets.MsgTypeChatMessage,
		"chat_id": chat.ID,
		"message": reply,
	}); marshalErr == nil {
		go api.Deps.WebSocket.PushChatMessage(chat.ID, payload)
	} else {
		log.Println("failed to marshal chat push", marshalErr)
	}

	return &ServerResponse{
		Message:    "Message sent",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"chat":    chat,
			"message": reply,
		},
	}
}
