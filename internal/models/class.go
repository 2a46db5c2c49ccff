package models

import (
	"time"

	"github.com/lib/pq"
)

// ClassGroup is one section of a department cohort year.
type ClassGroup struct {
	ID               string         `db:"id" json:"id" validate:"required"`
	Year             int            `db:"year" json:"year" validate:"required,gte=1"`
	Section          string         `db:"section" json:"section" validate:"required"`
	ClassName        string         `db:"class_name" json:"class_name" validate:"required"`
	AcademicYear     string         `db:"academic_year" json:"academic_year" validate:"required"`
	Department       string         `db:"department" json:"department" validate:"required"`
	AssignedFaculty  pq.StringArray `db:"assigned_faculty" json:"assigned_faculty" validate:"len=1"`
	AcademicAdvisors pq.StringArray `db:"academic_advisors" json:"academic_advisors" validate:"min=1"`
	Students         pq.StringArray `db:"students" json:"students"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// PrimaryFaculty returns the single faculty member responsible for the class.
func (c *ClassGroup) PrimaryFaculty() string {
	if c == nil || len(c.AssignedFaculty) == 0 {
		return ""
	}
	return c.AssignedFaculty[0]
}
