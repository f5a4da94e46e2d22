package deps

import (
	"github.com/eventure/eventure_api/config"
	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/internal/save"
	"github.com/eventure/eventure_api/internal/store"
	"github.com/eventure/eventure_api/util/websockets"
)

// Dependencies wires the session-lifetime singletons: the seeded event
// catalog, the mutable stores, the save controller and the websocket hub.
// Stores are only reachable through here; nothing hands out the backing
// slices.
type Dependencies struct {
	Catalog     *store.Catalog
	Curated     []model.CuratedCollection
	Collections *store.Collections
	Crews       *store.Crews
	Chats       *store.Chats
	Searcher    *store.Searcher
	Saves       *save.Controller
	WebSocket   *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	catalog := store.NewCatalog(store.SeedEvents())
	collections := store.NewCollections()
	collections.SeedDefault(cfg.DefaultOwnerID)

	deps := Dependencies{
		Catalog:     catalog,
		Curated:     store.SeedCuratedCollections(),
		Collections: collections,
		Crews:       store.NewCrews(),
		Chats:       store.NewChats(),
		Searcher:    store.NewSearcher(catalog),
		Saves:       save.NewController(collections, catalog, cfg.RequestTimeout),
		WebSocket:   websockets.NewWebSocketManager(),
	}
	return &deps
}
