package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

// StaffRepository persists staff members.
type StaffRepository struct {
	db        *sqlx.DB
	batchSize int
}

// NewStaffRepository constructs a StaffRepository.
func NewStaffRepository(db *sqlx.DB, batchSize int) *StaffRepository {
	return &StaffRepository{db: db, batchSize: normaliseBatchSize(batchSize)}
}

// Clear removes every staff record.
func (r *StaffRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "staff")
}

// BulkInsert writes staff members in batches.
func (r *StaffRepository) BulkInsert(ctx context.Context, staff []models.StaffMember) (int, error) {
	const query = `INSERT INTO staff (id, name, email, password, profile_img, register_no, role, department, classes, is_active, created_at, updated_at)
        VALUES (:id, :name, :email, :password, :profile_img, :register_no, :role, :department, :classes, :is_active, :created_at, :updated_at)`
	return bulkInsert(ctx, r.db, "staff", query, staff, r.batchSize)
}
