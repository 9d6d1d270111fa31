package model

import (
	"time"

	"recanto/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldFullName     = "full_name"
	FieldPhone        = "phone"
	FieldProfileImage = "profile_image"
	FieldIsPremium    = "is_premium"
	FieldPremiumSince = "premium_since"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
)

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Password     string     `db:"password"`
	Role         string     `db:"role"`
	FullName     *string    `db:"full_name"`
	Phone        *string    `db:"phone"`
	ProfileImage *string    `db:"profile_image"`
	IsPremium    bool       `db:"is_premium"`
	PremiumSince *time.Time `db:"premium_since"`
	LastLogin    *time.Time `db:"last_login"`
	Active       bool       `db:"active"`
	model.Metadata
}
