package models

import "errors"

// ErrUserNotFound is returned when a user lookup matches no record
var ErrUserNotFound = errors.New("user not found")

// User represents a learner account
type User struct {
	ID   string `json:"userId"`
	Name string `json:"userName"`
}
