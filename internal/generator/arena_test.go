package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

func seededArena(t *testing.T) *Arena {
	t.Helper()
	a := NewArena()
	require.NoError(t, a.addStaff(models.StaffMember{ID: "fac-1", Role: models.RoleFaculty}))
	require.NoError(t, a.addClass(models.ClassGroup{ID: "class-1", AssignedFaculty: []string{"fac-1"}}))
	require.NoError(t, a.addStudent(models.Student{ID: "stu-1", ClassID: "class-1"}))
	return a
}

func TestArenaPatches(t *testing.T) {
	a := seededArena(t)

	require.NoError(t, a.AssignClass("fac-1", "class-1"))
	require.NoError(t, a.Enroll("class-1", "stu-1"))
	require.NoError(t, a.RecordEvent(models.Event{ID: "ev-1", SubmittedBy: "stu-1", Status: models.EventStatusApproved, PointsEarned: 50}))
	require.NoError(t, a.RecordEvent(models.Event{ID: "ev-2", SubmittedBy: "stu-1", Status: models.EventStatusPending}))

	member, _ := a.Staff("fac-1")
	assert.Equal(t, []string{"class-1"}, []string(member.Classes))
	class, _ := a.Class("class-1")
	assert.Equal(t, []string{"stu-1"}, []string(class.Students))
	student, _ := a.Student("stu-1")
	assert.Equal(t, []string{"ev-1", "ev-2"}, []string(student.EventsParticipated))
	assert.Equal(t, 50, student.TotalPoints)
}

func TestArenaRejectsUnknownIDs(t *testing.T) {
	a := seededArena(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{"assign unknown staff", func() error { return a.AssignClass("nobody", "class-1") }},
		{"assign unknown class", func() error { return a.AssignClass("fac-1", "nowhere") }},
		{"enroll unknown class", func() error { return a.Enroll("nowhere", "stu-1") }},
		{"enroll unknown student", func() error { return a.Enroll("class-1", "nobody") }},
		{"event for unknown student", func() error { return a.RecordEvent(models.Event{ID: "ev", SubmittedBy: "nobody"}) }},
		{"duplicate staff", func() error { return a.addStaff(models.StaffMember{ID: "fac-1"}) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrInvariant))
		})
	}
}

func TestArenaEnrollRequiresMatchingClass(t *testing.T) {
	a := seededArena(t)
	require.NoError(t, a.addClass(models.ClassGroup{ID: "class-2"}))

	err := a.Enroll("class-2", "stu-1")
	require.Error(t, err)
	class, _ := a.Class("class-2")
	assert.Empty(t, class.Students)
}

func TestArenaFinalizeDoesNotAlias(t *testing.T) {
	a := seededArena(t)
	require.NoError(t, a.Enroll("class-1", "stu-1"))

	graph := a.Finalize()
	graph.Classes[0].Students[0] = "tampered"
	graph.Students[0].TotalPoints = 999

	class, _ := a.Class("class-1")
	assert.Equal(t, "stu-1", class.Students[0])
	student, _ := a.Student("stu-1")
	assert.Zero(t, student.TotalPoints)
	assert.Equal(t, Counts{Staff: 1, Classes: 1, Students: 1}, graph.Counts())
}
