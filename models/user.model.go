package models

import "gorm.io/gorm"

// User is an account record. The password is a bcrypt hash and is never
// serialized into responses.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"` // stored lowercase
	Password string `json:"-" gorm:"not null"`
}
