// Package models contains data models for the todo service.
package models

// Todo represents a single to-do item owned by a user.
type Todo struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Priority    int    `json:"priority" gorm:"not null"`
	Completed   bool   `json:"completed" gorm:"not null;default:false"`
	OwnerID     int64  `json:"owner_id" gorm:"index;not null"`
	Owner       User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Todo model.
func (Todo) TableName() string {
	return "todos"
}
