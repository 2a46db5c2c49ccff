package models

import (
	"time"

	"github.com/lib/pq"
)

// StaffRole enumerates the teaching roles seeded per department.
type StaffRole string

const (
	RoleDepartmentHead  StaffRole = "HOD"
	RoleAcademicAdvisor StaffRole = "Academic Advisor"
	RoleFaculty         StaffRole = "Faculty"
)

// StaffMember represents a department head, academic advisor or faculty member.
type StaffMember struct {
	ID           string         `db:"id" json:"id" validate:"required"`
	Name         string         `db:"name" json:"name" validate:"required"`
	Email        string         `db:"email" json:"email" validate:"required,email"`
	PasswordHash string         `db:"password" json:"-" validate:"required"`
	ProfileImg   *string        `db:"profile_img" json:"profile_img,omitempty"`
	RegisterNo   string         `db:"register_no" json:"register_no" validate:"required"`
	Role         StaffRole      `db:"role" json:"role" validate:"required,oneof=HOD 'Academic Advisor' Faculty"`
	Department   string         `db:"department" json:"department" validate:"required"`
	Classes      pq.StringArray `db:"classes" json:"classes"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
