package dto

import (
	"recanto/internal/domains/user/model"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/timezone"
)

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsPremium    bool    `json:"is_premium"`
	PremiumSince string  `json:"premium_since,omitempty"`
	LastLogin    string  `json:"last_login,omitempty"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.ProfileImage = model.ProfileImage
	r.IsPremium = model.IsPremium
	r.Active = model.Active

	if model.PremiumSince != nil {
		r.PremiumSince = timezone.Format(*model.PremiumSince, constant.DateFormat)
	}

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type UpdateProfileRequest struct {
	FullName     *string `db:"full_name"     json:"full_name"     validate:"omitempty,max=100"`
	Phone        *string `db:"phone"         json:"phone"         validate:"omitempty,max=20"`
	ProfileImage *string `db:"profile_image" json:"profile_image" validate:"omitempty,max=500"`
}
