package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

type studentRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	Password           string         `db:"password"`
	ProfileImg         *string        `db:"profile_img"`
	RegisterNo         string         `db:"register_no"`
	ClassID            string         `db:"class_id"`
	Year               int            `db:"year"`
	Course             string         `db:"course"`
	Program            string         `db:"program"`
	RegistrationYear   int            `db:"registration_year"`
	Department         string         `db:"department"`
	TotalPoints        int            `db:"total_points"`
	EventsParticipated pq.StringArray `db:"events_participated"`
	IsActive           bool           `db:"is_active"`
	IsGraduated        bool           `db:"is_graduated"`
	IsArchived         bool           `db:"is_archived"`
	CurrentClass       types.JSONText `db:"current_class"`
	ClassHistory       types.JSONText `db:"class_history"`
	Achievements       pq.StringArray `db:"achievements"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func toStudentRow(s models.Student) (studentRow, error) {
	current, err := json.Marshal(s.CurrentClass)
	if err != nil {
		return studentRow{}, fmt.Errorf("encode current class for %s: %w", s.ID, err)
	}
	history, err := json.Marshal(s.ClassHistory)
	if err != nil {
		return studentRow{}, fmt.Errorf("encode class history for %s: %w", s.ID, err)
	}
	return studentRow{
		ID:                 s.ID,
		Name:               s.Name,
		Email:              s.Email,
		Password:           s.PasswordHash,
		ProfileImg:         s.ProfileImg,
		RegisterNo:         s.RegisterNo,
		ClassID:            s.ClassID,
		Year:               s.Year,
		Course:             s.Course,
		Program:            s.Program,
		RegistrationYear:   s.RegistrationYear,
		Department:         s.Department,
		TotalPoints:        s.TotalPoints,
		EventsParticipated: s.EventsParticipated,
		IsActive:           s.IsActive,
		IsGraduated:        s.IsGraduated,
		IsArchived:         s.IsArchived,
		CurrentClass:       types.JSONText(current),
		ClassHistory:       types.JSONText(history),
		Achievements:       s.Achievements,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}, nil
}

// StudentRepository persists students.
type StudentRepository struct {
	db        *sqlx.DB
	batchSize int
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB, batchSize int) *StudentRepository {
	return &StudentRepository{db: db, batchSize: normaliseBatchSize(batchSize)}
}

// Clear removes every student record.
func (r *StudentRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "students")
}

// BulkInsert writes students in batches.
func (r *StudentRepository) BulkInsert(ctx context.Context, students []models.Student) (int, error) {
	rows := make([]studentRow, 0, len(students))
	for _, s := range students {
		row, err := toStudentRow(s)
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}
	const query = `INSERT INTO students (id, name, email, password, profile_img, register_no, class_id, year, course, program, registration_year, department,
        total_points, events_participated, is_active, is_graduated, is_archived, current_class, class_history, achievements, created_at, updated_at)
        VALUES (:id, :name, :email, :password, :profile_img, :register_no, :class_id, :year, :course, :program, :registration_year, :department,
        :total_points, :events_participated, :is_active, :is_graduated, :is_archived, :current_class, :class_history, :achievements, :created_at, :updated_at)`
	return bulkInsert(ctx, r.db, "students", query, rows, r.batchSize)
}
