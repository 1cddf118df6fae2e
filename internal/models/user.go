package models

import "time"

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string     `json:"email" gorm:"size:255"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255;not null"`
	Role         Role       `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
