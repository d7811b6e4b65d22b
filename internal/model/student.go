package model

import "time"

// Student represents an enrolled university student.
type Student struct {
	ID          int       `json:"id"`
	IndexNumber string    `json:"index_number"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
