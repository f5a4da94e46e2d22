package rest

import (
	"context"
	"net/url"
	"time"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/util/values"
)

// CreateCrewHelper looks up the event being rallied around and forms the
// crew with its display fields denormalized on.
func (api *API) CreateCrewHelper(ctx context.Context, input model.CreateCrewInput, creator model.CrewMember) (model.Crew, string, string, error) {
	event, err := api.Deps.Catalog.GetByID(ctx, input.EventID)
	if err != nil {
		return model.Crew{}, statusForError(err), "Event not found", err
	}

	crew, err := api.Deps.Crews.Create(ctx, input, event, creator)
	if err != nil {
		return model.Crew{}, statusForError(err), "Failed to create crew", err
	}
	return crew, values.Created, "Crew created successfully", nil
}

func crewMemberFromRequest(userID string, req model.JoinCrewRequest) model.CrewMember {
	return model.CrewMember{
		UserID:    userID,
		UserName:  req.UserName,
		AvatarURL: req.AvatarURL,
		Age:       req.Age,
		Bio:       req.Bio,
	}
}

func crewFiltersFromQuery(params url.Values) model.CrewFilters {
	filters := model.CrewFilters{
		EventID:    params.Get("event_id"),
		Status:     params["status"],
		TargetSize: params["target_size"],
	}
	if from := params.Get("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filters.DateFrom = &t
		}
	}
	if to := params.Get("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filters.DateTo = &t
		}
	}
	return filters
}
