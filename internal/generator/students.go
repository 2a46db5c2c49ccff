package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

// RegisterNumber formats a student register number as {regYear}{dept}{seq:03d}.
func RegisterNumber(registrationYear int, dept string, seq int) string {
	return fmt.Sprintf("%d%s%03d", registrationYear, dept, seq)
}

// generateStudents fills every class with StudentsPerClass students. The
// sequence counter is per department and spans all cohort years.
func (g *Generator) generateStudents(a *Arena, classes map[cohortKey][]string, digest string, now time.Time) error {
	counters := make(map[string]int, len(g.cfg.Departments))
	for _, dept := range g.cfg.Departments {
		counters[dept] = 1
	}

	for _, dept := range g.cfg.Departments {
		for _, year := range g.cfg.Years {
			regYear := g.cfg.RegistrationYears[year]
			span := g.cfg.AcademicSpans[year]

			for _, classID := range classes[cohortKey{dept: dept, year: year}] {
				class, ok := a.Class(classID)
				if !ok {
					return unknownID("class", classID)
				}
				for i := 0; i < g.cfg.StudentsPerClass; i++ {
					regNo := RegisterNumber(regYear, dept, counters[dept])
					student := models.Student{
						ID:                 g.ids.Allocate(),
						Name:               g.text.Name(),
						Email:              strings.ToLower(regNo) + "@student.college.edu",
						PasswordHash:       digest,
						RegisterNo:         regNo,
						ClassID:            classID,
						Year:               year,
						Course:             fmt.Sprintf("%s-%s", g.cfg.Program, dept),
						Program:            g.cfg.Program,
						RegistrationYear:   regYear,
						Department:         dept,
						EventsParticipated: []string{},
						IsActive:           true,
						CurrentClass:       models.ClassSnapshot{Year: year, Section: class.Section, Ref: classID},
						ClassHistory: []models.ClassHistoryEntry{{
							Year:         year,
							Section:      class.Section,
							AcademicYear: span,
							ClassRef:     classID,
						}},
						Achievements: []string{},
						CreatedAt:    now,
						UpdatedAt:    now,
					}
					if err := a.addStudent(student); err != nil {
						return err
					}
					if err := a.Enroll(classID, student.ID); err != nil {
						return err
					}
					counters[dept]++
				}
			}
		}
	}
	return nil
}
