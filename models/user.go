package models

import (
	"fmt"
	"time"
)

// Role represents user role types. It is a closed enumeration:
// any other value is rejected at the authorization boundary.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting unknown values
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("unknown role: %q", value)
	}
}

// User represents a user in the system
type User struct {
	ID                     uint       `json:"id" gorm:"primaryKey"`
	Name                   string     `json:"name" gorm:"size:100;not null"`
	Email                  string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password               string     `json:"-" gorm:"size:255;not null"` // Password is not exposed in JSON
	Role                   Role       `json:"role" gorm:"type:varchar(10);default:'user'"`
	EmailVerifiedAt        *time.Time `json:"emailVerifiedAt"`
	TwoFactorSecret        *string    `json:"-" gorm:"size:255"`
	TwoFactorRecoveryCodes *string    `json:"-" gorm:"type:text"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}
