// Package models contains data models for the todo service.
package models

// User represents a registered account.
type User struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName      string `json:"first_name" gorm:"not null"`
	LastName       string `json:"last_name" gorm:"not null"`
	HashedPassword string `json:"-" gorm:"not null"`
	Role           string `json:"role"`
	IsActive       bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
