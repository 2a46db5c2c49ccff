package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func sampleStaff(n int) []models.StaffMember {
	now := time.Now().UTC()
	staff := make([]models.StaffMember, n)
	for i := range staff {
		staff[i] = models.StaffMember{
			ID:           "staff-" + string(rune('a'+i)),
			Name:         "Dr. Someone",
			Email:        "advisor@college.edu",
			PasswordHash: "hash",
			RegisterNo:   "ADV-CSE-1-00" + string(rune('1'+i)),
			Role:         models.RoleAcademicAdvisor,
			Department:   "CSE",
			Classes:      []string{"class-1"},
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return staff
}

func TestStaffRepositoryBulkInsertBatches(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStaffRepository(db, 2)

	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.BulkInsert(context.Background(), sampleStaff(3))
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffRepositoryBulkInsertReportsPartialCount(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStaffRepository(db, 2)

	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO staff").WillReturnError(errors.New("disk full"))

	inserted, err := repo.BulkInsert(context.Background(), sampleStaff(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bulk insert staff")
	assert.Equal(t, 2, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertEmptyIsNoop(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	inserted, err := NewEventRepository(db, 0).BulkInsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoriesClear(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM events").WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec("DELETE FROM students").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM classes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM staff").WillReturnError(errors.New("permission denied"))

	ctx := context.Background()
	require.NoError(t, NewEventRepository(db, 0).Clear(ctx))
	require.NoError(t, NewStudentRepository(db, 0).Clear(ctx))
	require.NoError(t, NewClassRepository(db, 0).Clear(ctx))
	err := NewStaffRepository(db, 0).Clear(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear staff")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassAndStudentBulkInsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO classes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO students").WillReturnResult(sqlmock.NewResult(0, 1))

	classes := []models.ClassGroup{{
		ID: "class-1", Year: 1, Section: "A1", ClassName: "1-A1-CSE", AcademicYear: "2024-2028", Department: "CSE",
		AssignedFaculty: []string{"fac-1"}, AcademicAdvisors: []string{"adv-1", "adv-2"}, Students: []string{"stu-1"},
		CreatedAt: now, UpdatedAt: now,
	}}
	students := []models.Student{{
		ID: "stu-1", Name: "Student", Email: "2024cse001@student.college.edu", PasswordHash: "hash", RegisterNo: "2024CSE001",
		ClassID: "class-1", Year: 1, Course: "BTech-CSE", Program: "BTech", RegistrationYear: 2024, Department: "CSE",
		EventsParticipated: []string{}, IsActive: true,
		CurrentClass: models.ClassSnapshot{Year: 1, Section: "A1", Ref: "class-1"},
		ClassHistory: []models.ClassHistoryEntry{{Year: 1, Section: "A1", AcademicYear: "2024-2028", ClassRef: "class-1"}},
		Achievements: []string{}, CreatedAt: now, UpdatedAt: now,
	}}

	ctx := context.Background()
	n, err := NewClassRepository(db, 0).BulkInsert(ctx, classes)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = NewStudentRepository(db, 0).BulkInsert(ctx, students)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToStudentRowEncodesSnapshots(t *testing.T) {
	row, err := toStudentRow(models.Student{
		ID:           "stu-1",
		CurrentClass: models.ClassSnapshot{Year: 2, Section: "B1", Ref: "class-9"},
		ClassHistory: []models.ClassHistoryEntry{{Year: 2, Section: "B1", AcademicYear: "2023-2027", ClassRef: "class-9"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"year":2,"section":"B1","ref":"class-9"}`, row.CurrentClass.String())
	assert.JSONEq(t, `[{"year":2,"section":"B1","academicYear":"2023-2027","classRef":"class-9"}]`, row.ClassHistory.String())
}

func TestToEventRowFlattensVariant(t *testing.T) {
	plain := toEventRow(models.Event{ID: "ev-1", Category: models.CategoryOthers, Status: models.EventStatusPending})
	assert.Nil(t, plain.EventLocation)
	assert.Nil(t, plain.EventScope)
	assert.Nil(t, plain.EventOrganizer)
	assert.Nil(t, plain.ParticipationType)
	assert.Nil(t, plain.PrizeMoney)
	assert.Nil(t, plain.ApprovedBy)

	college := "NIT Trichy"
	prize := 12000
	approver := "fac-1"
	competitive := toEventRow(models.Event{
		ID:         "ev-2",
		Category:   models.CategoryHackathon,
		Status:     models.EventStatusApproved,
		ApprovedBy: &approver,
		Competition: &models.Competition{
			Location:          models.LocationOutsideCollege,
			OtherCollegeName:  &college,
			Scope:             models.ScopeNational,
			Organizer:         "Industry Based",
			ParticipationType: "Team",
			PrizeMoney:        &prize,
		},
	})
	require.NotNil(t, competitive.EventScope)
	assert.Equal(t, "National", *competitive.EventScope)
	assert.Equal(t, "NIT Trichy", *competitive.OtherCollegeName)
	assert.Equal(t, 12000, *competitive.PrizeMoney)
	assert.Equal(t, "Hackathon", competitive.Category)
}
