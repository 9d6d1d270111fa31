package dto

import (
	"time"

	"github.com/google/uuid"

	"recanto/internal/domains/availability/model"
	"recanto/shared/constant"
	"recanto/shared/failure"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
)

type OverrideEntry struct {
	Date          string `json:"date"          validate:"required"`
	Available     bool   `json:"available"`
	PriceOverride *int64 `json:"price_override,omitempty" validate:"omitempty,gt=0"`
}

type SetAvailabilityRequest struct {
	Overrides []OverrideEntry `json:"overrides" validate:"required,min=1,max=366,dive"`
}

// ToModels parses and validates the override dates. Duplicated dates within
// one request are rejected so the upsert result is deterministic.
func (s *SetAvailabilityRequest) ToModels(propertyID, user string) ([]model.AvailabilityOverride, error) {
	models := make([]model.AvailabilityOverride, len(s.Overrides))
	seen := make(map[string]struct{}, len(s.Overrides))

	for i, entry := range s.Overrides {
		date, err := timezone.Parse(constant.DateOnlyFormat, entry.Date)
		if err != nil {
			return nil, failure.BadRequestFromString("date must be in YYYY-MM-DD format")
		}

		if _, ok := seen[entry.Date]; ok {
			return nil, failure.BadRequestFromString("duplicate date: " + entry.Date)
		}

		seen[entry.Date] = struct{}{}

		models[i] = model.AvailabilityOverride{
			ID:            uuid.NewString(),
			PropertyID:    propertyID,
			Date:          date,
			Available:     entry.Available,
			PriceOverride: entry.PriceOverride,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return models, nil
}

type OverrideResponse struct {
	Date          string `json:"date"`
	Available     bool   `json:"available"`
	PriceOverride *int64 `json:"price_override,omitempty"`
}

type GetAvailabilityResponse struct {
	PropertyID string             `json:"property_id"`
	Overrides  []OverrideResponse `json:"overrides"`
}

func (r *GetAvailabilityResponse) FromModels(propertyID string, models []model.AvailabilityOverride) {
	r.PropertyID = propertyID

	r.Overrides = make([]OverrideResponse, len(models))
	for i, mod := range models {
		r.Overrides[i] = OverrideResponse{
			Date:          mod.Date.Format(constant.DateOnlyFormat),
			Available:     mod.Available,
			PriceOverride: mod.PriceOverride,
		}
	}
}

// DateRange bounds a listing query. Zero values mean unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}
