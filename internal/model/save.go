package model

// Save request payloads. Save actions always name the event; the target
// collection is implicit (quick save), explicit, or created on the fly.

type QuickSaveRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

type SaveRequest struct {
	EventID      string `json:"event_id" validate:"required"`
	CollectionID string `json:"collection_id" validate:"required"`
}

type SaveToNewCollectionRequest struct {
	EventID     string `json:"event_id" validate:"required"`
	Name        string `json:"name" validate:"required,collectionname"`
	Description string `json:"description" validate:"max=250"`
}

// SaveState is the derived per-event save summary the client renders from:
// whether the event is saved anywhere, which collections hold it and the
// save-button label.
type SaveState struct {
	EventID     string       `json:"event_id"`
	Saved       bool         `json:"saved"`
	Label       string       `json:"label"`
	Collections []Collection `json:"collections"`
}
