package model

import (
	"strings"
	"time"
)

// User represents a staff account: a teacher or a student service clerk.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Title        string    `json:"title,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName renders "Title FirstName LastName", skipping an empty title.
func (u User) DisplayName() string {
	return strings.TrimSpace(strings.Join([]string{u.Title, u.FirstName, u.LastName}, " "))
}

// TeacherOption is one entry of the teacher picker on the course form.
type TeacherOption struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// LoginRequest is the payload for staff authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after a successful staff login.
type LoginResponse struct {
	Token       string   `json:"token"`
	User        User     `json:"user"`
	Permissions []string `json:"permissions"`
}
