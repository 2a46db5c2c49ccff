package models

import (
	"time"

	"github.com/lib/pq"
)

// ClassSnapshot is the denormalised view of a student's current class.
type ClassSnapshot struct {
	Year    int    `json:"year"`
	Section string `json:"section"`
	Ref     string `json:"ref"`
}

// ClassHistoryEntry records one class a student has belonged to.
type ClassHistoryEntry struct {
	Year         int    `json:"year"`
	Section      string `json:"section"`
	AcademicYear string `json:"academicYear"`
	ClassRef     string `json:"classRef"`
}

// Student represents a learner enrolled in exactly one class.
type Student struct {
	ID                 string              `json:"id" validate:"required"`
	Name               string              `json:"name" validate:"required"`
	Email              string              `json:"email" validate:"required,email"`
	PasswordHash       string              `json:"-" validate:"required"`
	ProfileImg         *string             `json:"profile_img,omitempty"`
	RegisterNo         string              `json:"register_no" validate:"required"`
	ClassID            string              `json:"class" validate:"required"`
	Year               int                 `json:"year" validate:"required,gte=1"`
	Course             string              `json:"course" validate:"required"`
	Program            string              `json:"program" validate:"required"`
	RegistrationYear   int                 `json:"registration_year" validate:"required"`
	Department         string              `json:"department" validate:"required"`
	TotalPoints        int                 `json:"total_points" validate:"gte=0"`
	EventsParticipated pq.StringArray      `json:"events_participated"`
	IsActive           bool                `json:"is_active"`
	IsGraduated        bool                `json:"is_graduated"`
	IsArchived         bool                `json:"is_archived"`
	CurrentClass       ClassSnapshot       `json:"current_class"`
	ClassHistory       []ClassHistoryEntry `json:"class_history" validate:"min=1"`
	Achievements       pq.StringArray      `json:"achievements"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}
