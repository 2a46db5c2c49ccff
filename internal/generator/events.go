package generator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

const eventWindow = 365 * 24 * time.Hour

// generateEvents draws zero or more events per student and books them on the
// submitter. Students whose class cannot be resolved are skipped and
// returned so the caller can escalate.
func (g *Generator) generateEvents(a *Arena, now time.Time, byStatus map[models.EventStatus]int) ([]string, error) {
	var skipped []string
	for _, studentID := range a.StudentIDs() {
		n := IntRange(g.sampler, 0, g.cfg.MaxEventsPerStudent)
		if n == 0 {
			continue
		}
		student, _ := a.Student(studentID)
		class, ok := a.Class(student.ClassID)
		if !ok {
			g.logger.Warn("student class not found, skipping events",
				zap.String("student_id", studentID),
				zap.String("class_id", student.ClassID))
			skipped = append(skipped, studentID)
			continue
		}
		approver := class.PrimaryFaculty()

		for i := 0; i < n; i++ {
			event := g.newEvent(studentID, approver, now)
			if err := a.RecordEvent(event); err != nil {
				return skipped, err
			}
			byStatus[event.Status]++
		}
	}
	return skipped, nil
}

func (g *Generator) newEvent(studentID, approver string, now time.Time) models.Event {
	date := now.Add(-eventWindow).Add(time.Duration(g.sampler.Float64() * float64(eventWindow))).Truncate(time.Second)
	category := Pick(g.sampler, g.cfg.Categories)

	var competition *models.Competition
	if g.cfg.IsCompetitive(category) {
		competition = &models.Competition{Location: Pick(g.sampler, g.cfg.Locations)}
		if competition.Location == models.LocationOutsideCollege {
			college := Pick(g.sampler, g.cfg.Colleges)
			competition.OtherCollegeName = &college
		}
		competition.Scope = Pick(g.sampler, g.cfg.Scopes)
		competition.Organizer = Pick(g.sampler, g.cfg.Organizers)
		competition.ParticipationType = Pick(g.sampler, g.cfg.ParticipationTypes)
	}

	position := Pick(g.sampler, g.cfg.Positions)
	points := 0
	if competition != nil {
		points = g.cfg.Points[position][competition.Scope]
		if position.Placing() {
			prize := IntRange(g.sampler, g.cfg.PrizeMoneyMin, g.cfg.PrizeMoneyMax)
			competition.PrizeMoney = &prize
		}
	}

	status := PickWeighted(g.sampler, g.cfg.Statuses, g.cfg.StatusWeights)
	// Unapproved claims earn nothing yet, whatever the table says.
	if status != models.EventStatusApproved {
		points = 0
	}

	event := models.Event{
		ID:              g.ids.Allocate(),
		EventName:       fmt.Sprintf("%s - %s", category, g.text.Phrase()),
		Description:     g.text.Paragraph(),
		Date:            date,
		ProofURL:        "https://proof.example.com/" + g.text.Token(),
		PDFDocument:     fmt.Sprintf("https://docs.example.com/%s.pdf", g.text.Token()),
		Category:        category,
		PositionSecured: position,
		Status:          status,
		PointsEarned:    points,
		SubmittedBy:     studentID,
		Competition:     competition,
		CreatedAt:       date,
		UpdatedAt:       now,
	}
	if status != models.EventStatusPending {
		by := approver
		event.ApprovedBy = &by
	}
	return event
}
