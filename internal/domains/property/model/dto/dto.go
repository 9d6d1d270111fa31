package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"recanto/internal/domains/property/model"
	"recanto/shared"
	gDto "recanto/shared/dto"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
)

type CreatePropertyRequest struct {
	Title         string   `json:"title"           validate:"required,max=200"`
	Description   string   `json:"description"     validate:"omitempty,max=5000"`
	City          string   `json:"city"            validate:"required,max=100"`
	State         string   `json:"state"           validate:"required,max=100"`
	Address       string   `json:"address"         validate:"omitempty,max=300"`
	Capacity      int      `json:"capacity"        validate:"required,min=1"`
	Bedrooms      int      `json:"bedrooms"        validate:"omitempty,min=0"`
	Bathrooms     int      `json:"bathrooms"       validate:"omitempty,min=0"`
	PricePerNight int64    `json:"price_per_night" validate:"required,min=1"`
	Amenities     []string `json:"amenities"       validate:"omitempty,dive,max=100"`
	Active        *bool    `json:"active"          validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel(ownerID string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Property{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Title:         c.Title,
		Description:   c.Description,
		City:          c.City,
		State:         c.State,
		Address:       c.Address,
		Capacity:      c.Capacity,
		Bedrooms:      c.Bedrooms,
		Bathrooms:     c.Bathrooms,
		PricePerNight: c.PricePerNight,
		Amenities:     pq.StringArray(c.Amenities),
		Images:        pq.StringArray{},
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type UpdatePropertyRequest struct {
	Title         string         `db:"title"           json:"title"           validate:"omitempty,max=200"`
	Description   string         `db:"description"     json:"description"     validate:"omitempty,max=5000"`
	City          string         `db:"city"            json:"city"            validate:"omitempty,max=100"`
	State         string         `db:"state"           json:"state"           validate:"omitempty,max=100"`
	Address       string         `db:"address"         json:"address"         validate:"omitempty,max=300"`
	Capacity      *int           `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Bedrooms      *int           `db:"bedrooms"        json:"bedrooms"        validate:"omitempty,min=0"`
	Bathrooms     *int           `db:"bathrooms"       json:"bathrooms"       validate:"omitempty,min=0"`
	PricePerNight *int64         `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=1"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"       validate:"omitempty,dive,max=100"`
	Active        *bool          `db:"active"          json:"active"          validate:"omitempty"`
}

type PropertyResponse struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"owner_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Address       string   `json:"address"`
	Capacity      int      `json:"capacity"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	PricePerNight int64    `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	Active        bool     `json:"active"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Title = model.Title
	r.Description = model.Description
	r.City = model.City
	r.State = model.State
	r.Address = model.Address
	r.Capacity = model.Capacity
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.PricePerNight = model.PricePerNight
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

type AddImagesResponse struct {
	Images []string `json:"images"`
}
