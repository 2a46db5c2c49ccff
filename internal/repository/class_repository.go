package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

// ClassRepository persists class groups.
type ClassRepository struct {
	db        *sqlx.DB
	batchSize int
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB, batchSize int) *ClassRepository {
	return &ClassRepository{db: db, batchSize: normaliseBatchSize(batchSize)}
}

// Clear removes every class record.
func (r *ClassRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "classes")
}

// BulkInsert writes classes in batches.
func (r *ClassRepository) BulkInsert(ctx context.Context, classes []models.ClassGroup) (int, error) {
	const query = `INSERT INTO classes (id, year, section, class_name, academic_year, department, assigned_faculty, academic_advisors, students, created_at, updated_at)
        VALUES (:id, :year, :section, :class_name, :academic_year, :department, :assigned_faculty, :academic_advisors, :students, :created_at, :updated_at)`
	return bulkInsert(ctx, r.db, "classes", query, classes, r.batchSize)
}
