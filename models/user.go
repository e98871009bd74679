package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
	RoleVendor UserRole = "vendor"
	RoleDriver UserRole = "driver"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleClient, RoleAdmin, RoleVendor, RoleDriver:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserName     string    `json:"user_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	AnswerHash   string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'client'"`
	Phone        string    `json:"phone"`
	Addresses    []string  `json:"addresses" gorm:"serializer:json"`
	Profile      string    `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
