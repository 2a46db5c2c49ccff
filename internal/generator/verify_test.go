package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

func validGraph(t *testing.T) (Config, *Graph) {
	t.Helper()
	cfg := singleClassConfig()
	cfg.StudentsPerClass = 10
	graph, _, err := newTestGenerator(t, cfg, 21).Generate()
	require.NoError(t, err)
	require.NoError(t, Verify(cfg, graph))
	return cfg, graph
}

func TestVerifyDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*Graph)
	}{
		{"duplicate student register number", func(g *Graph) { g.Students[1].RegisterNo = g.Students[0].RegisterNo }},
		{"duplicate staff register number", func(g *Graph) { g.Staff[1].RegisterNo = g.Staff[0].RegisterNo }},
		{"student dropped from roster", func(g *Graph) { g.Classes[0].Students = g.Classes[0].Students[1:] }},
		{"student points drift", func(g *Graph) { g.Students[0].TotalPoints += 5 }},
		{"faculty forgets class", func(g *Graph) {
			for i := range g.Staff {
				if g.Staff[i].Role == models.RoleFaculty {
					g.Staff[i].Classes = nil
				}
			}
		}},
		{"shared id", func(g *Graph) { g.Students[0].ID = g.Classes[0].ID }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, graph := validGraph(t)
			tc.corrupt(graph)
			err := Verify(cfg, graph)
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrInvariant))
		})
	}
}

func TestVerifyDetectsEventRuleBreaks(t *testing.T) {
	cfg, graph := validGraph(t)
	student := &graph.Students[0]
	approver := graph.Classes[0].PrimaryFaculty()

	pending := models.Event{
		ID:              "ev-pending",
		Category:        models.CategoryOthers,
		PositionSecured: models.PositionNone,
		Status:          models.EventStatusPending,
		PointsEarned:    10,
		SubmittedBy:     student.ID,
		ApprovedBy:      &approver,
	}
	graph.Events = append(graph.Events, pending)
	student.EventsParticipated = append(student.EventsParticipated, pending.ID)

	err := Verify(cfg, graph)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invariant violations")
	assert.Contains(t, err.Error(), "ev-pending")
}

func TestVerifyFlagsCompetitiveFieldsOnWrongCategory(t *testing.T) {
	cfg, graph := validGraph(t)
	student := &graph.Students[0]
	event := models.Event{
		ID:              "ev-cert",
		Category:        models.CategoryGlobalCertificates,
		PositionSecured: models.PositionNone,
		Status:          models.EventStatusRejected,
		SubmittedBy:     student.ID,
		ApprovedBy:      &graph.Staff[0].ID,
		Competition:     &models.Competition{Location: models.LocationWithinCollege, Scope: models.ScopeState},
	}
	graph.Events = append(graph.Events, event)
	student.EventsParticipated = append(student.EventsParticipated, event.ID)

	err := Verify(cfg, graph)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ev-cert")
}
