package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eventure/eventure_api/config"
	deps "github.com/eventure/eventure_api/internal/debs"
	"github.com/eventure/eventure_api/util/websockets"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{Port: 0, RequestTimeout: 10 * time.Second, DefaultOwnerID: "1"}
	api := &API{Config: cfg, Deps: deps.New(cfg)}
	go api.Deps.WebSocket.Run()

	srv := httptest.NewServer(api.setUpServerHandler())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, userID string, body interface{}) (*http.Response, ServerResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var sr ServerResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, sr
}

func TestListEvents(t *testing.T) {
	srv := newTestServer(t)

	resp, sr := doJSON(t, http.MethodGet, srv.URL+"/events", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /events = %d; want 200", resp.StatusCode)
	}
	events, ok := sr.Data.([]interface{})
	if !ok {
		t.Fatalf("data is %T; want an event list", sr.Data)
	}
	if len(events) != 8 {
		t.Errorf("GET /events returned %d events; want the full seeded catalog of 8", len(events))
	}
}

func TestListEventsFiltered(t *testing.T) {
	srv := newTestServer(t)

	resp, sr := doJSON(t, http.MethodGet, srv.URL+"/events?price_min=0&price_max=0", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("filtered GET /events = %d; want 200", resp.StatusCode)
	}
	events, _ := sr.Data.([]interface{})
	for _, e := range events {
		event := e.(map[string]interface{})
		if price, _ := event["price"].(float64); price != 0 {
			t.Errorf("free-only filter returned event %v with price %v", event["id"], price)
		}
	}
}

func TestGetEventNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/events/999", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /events/999 = %d; want 404", resp.StatusCode)
	}
}

func TestSearchEvents(t *testing.T) {
	srv := newTestServer(t)

	resp, sr := doJSON(t, http.MethodGet, srv.URL+"/events?q=jazz", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /events?q=jazz = %d; want 200", resp.StatusCode)
	}
	events, _ := sr.Data.([]interface{})
	if len(events) != 1 {
		t.Errorf("search for jazz returned %d events; want 1", len(events))
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/events?q=%20%20", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank search = %d; want 400", resp.StatusCode)
	}
}

func TestCreateCollectionRequiresUser(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/collections", "",
		map[string]string{"name": "Weekend"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("POST /collections without user header = %d; want 401", resp.StatusCode)
	}
}

func TestCreateCollectionValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/collections", "1",
		map[string]string{"name": ""})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST /collections with empty name = %d; want 400", resp.StatusCode)
	}

	resp, sr := doJSON(t, http.MethodPost, srv.URL+"/collections", "1",
		map[string]string{"name": "Date Nights"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /collections = %d; want 201 (%s)", resp.StatusCode, sr.Message)
	}
}

func TestQuickSaveFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/saves/quick", "1",
		map[string]string{"event_id": "1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /saves/quick = %d; want 200", resp.StatusCode)
	}

	resp, sr := doJSON(t, http.MethodGet, srv.URL+"/saves/events/1", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /saves/events/1 = %d; want 200", resp.StatusCode)
	}
	state, _ := sr.Data.(map[string]interface{})
	if saved, _ := state["saved"].(bool); !saved {
		t.Error("save state reports the event unsaved after a quick save")
	}
	if label, _ := state["label"].(string); label != "All Saves" {
		t.Errorf("save label = %q; want %q", label, "All Saves")
	}
}

func TestJoinCrewUntilFull(t *testing.T) {
	srv := newTestServer(t)

	resp, sr := doJSON(t, http.MethodPost, srv.URL+"/crews", "creator", map[string]string{
		"event_id":    "1",
		"target_size": "3-4",
		"user_name":   "Alex",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /crews = %d; want 201 (%s)", resp.StatusCode, sr.Message)
	}
	crew, _ := sr.Data.(map[string]interface{})
	crewID, _ := crew["id"].(string)
	if crewID == "" {
		t.Fatal("created crew has no id")
	}

	for i := 2; i <= 4; i++ {
		resp, sr = doJSON(t, http.MethodPost, srv.URL+"/crews/"+crewID+"/join",
			fmt.Sprintf("u%d", i), map[string]string{"user_name": fmt.Sprintf("User %d", i)})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("join %d = %d; want 200 (%s)", i, resp.StatusCode, sr.Message)
		}
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/crews/"+crewID+"/join",
		"u5", map[string]string{"user_name": "User 5"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("join at capacity = %d; want 409", resp.StatusCode)
	}
}

func TestGetCollectionCountsViews(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodGet, srv.URL+"/collections/1", "", nil)
	resp, sr := doJSON(t, http.MethodGet, srv.URL+"/collections/1", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /collections/1 = %d; want 200", resp.StatusCode)
	}
	collection, _ := sr.Data.(map[string]interface{})
	if views, _ := collection["view_count"].(float64); views < 1 {
		t.Errorf("view_count = %v; want at least 1 after a prior read", views)
	}
}

func TestQuickSavePushesSaveUpdate(t *testing.T) {
	srv := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dialing /ws: %v", err)
	}
	defer conn.Close()
	// Let the hub finish registering the connection.
	time.Sleep(50 * time.Millisecond)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/saves/quick", "1",
		map[string]string{"event_id": "1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /saves/quick = %d; want 200", resp.StatusCode)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading save update push: %v", err)
	}
	var msg struct {
		Type    string `json:"type"`
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("push payload is not JSON: %v", err)
	}
	if msg.Type != websockets.MsgTypeSaveUpdate {
		t.Errorf("push type = %q; want %q", msg.Type, websockets.MsgTypeSaveUpdate)
	}
	if msg.EventID != "1" {
		t.Errorf("push event_id = %q; want %q", msg.EventID, "1")
	}
}

func TestBoardsListsCuratedAndUser(t *testing.T) {
	srv := newTestServer(t)

	resp, sr := doJSON(t, http.MethodGet, srv.URL+"/boards", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /boards = %d; want 200", resp.StatusCode)
	}
	cards, _ := sr.Data.([]interface{})
	// 4 curated boards plus the seeded default collection.
	if len(cards) != 5 {
		t.Fatalf("GET /boards returned %d cards; want 5", len(cards))
	}
	first := cards[0].(map[string]interface{})
	if kind, _ := first["kind"].(string); kind != "curated" {
		t.Errorf("first board kind = %q; want curated boards first", kind)
	}
}
