package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eventure/eventure_api/config"
	deps "github.com/eventure/eventure_api/internal/debs"
	"github.com/eventure/eventure_api/util/values"
	"github.com/go-chi/chi/v5"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
}

func (api *API) Init() {
	api.Deps.Crews.MarkEventPassed(context.Background(), time.Now())
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Eventure API"))
		},
	)

	mux.Mount("/events", api.EventRoutes())
	mux.Mount("/collections", api.CollectionRoutes())
	mux.Mount("/boards", api.BoardRoutes())
	mux.Mount("/saves", api.SaveRoutes())
	mux.Mount("/crews", api.CrewRoutes())
	mux.Mount("/chats", api.ChatRoutes())
	mux.HandleFunc("/ws", api.Deps.WebSocket.HandleConnections)

	return mux
}

func (a *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	err := a.Server.Shutdown(ctx)
	if err != nil {
		return err
	}
	return nil
}
