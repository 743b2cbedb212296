package domain

import "time"

type User struct {
	ID         uint      `json:"id"`
	StudentID  string    `json:"student_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	Cohort     string    `json:"cohort"`
	ProfileURL string    `json:"profile"`
	MajorID    uint      `json:"major_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserSummary is the trimmed shape embedded in team, notification and
// reimbursement responses.
type UserSummary struct {
	ID         uint   `json:"id"`
	StudentID  string `json:"student_id"`
	Name       string `json:"name"`
	ProfileURL string `json:"profile"`
}

type Major struct {
	ID        uint      `json:"id"`
	Major     string    `json:"major"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
