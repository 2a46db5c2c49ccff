package generator

import (
	"fmt"
	"time"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

// generateClasses builds the department x year x section grid. Sections and
// faculty are assigned round-robin, so labels repeat once the class count
// exceeds the section vocabulary.
func (g *Generator) generateClasses(a *Arena, pools staffPools, now time.Time) (map[cohortKey][]string, error) {
	classes := make(map[cohortKey][]string)
	for _, dept := range g.cfg.Departments {
		for _, year := range g.cfg.Years {
			key := cohortKey{dept: dept, year: year}
			faculty := pools.faculty[key]
			advisors := pools.advisors[key]
			if len(faculty) == 0 || len(advisors) == 0 {
				return nil, appErrors.Clone(appErrors.ErrInvariant, fmt.Sprintf("cohort %s year %d has no staff", dept, year))
			}

			for i := 0; i < g.cfg.ClassesPerYearPerDept; i++ {
				section := g.cfg.Sections[i%len(g.cfg.Sections)]
				assigned := faculty[i%len(faculty)]

				class := models.ClassGroup{
					ID:               g.ids.Allocate(),
					Year:             year,
					Section:          section,
					ClassName:        fmt.Sprintf("%d-%s-%s", year, section, dept),
					AcademicYear:     g.cfg.AcademicSpans[year],
					Department:       dept,
					AssignedFaculty:  []string{assigned},
					AcademicAdvisors: append([]string{}, advisors...),
					Students:         []string{},
					CreatedAt:        now,
					UpdatedAt:        now,
				}
				if err := a.addClass(class); err != nil {
					return nil, err
				}
				if err := a.AssignClass(assigned, class.ID); err != nil {
					return nil, err
				}
				for _, advisor := range advisors {
					if err := a.AssignClass(advisor, class.ID); err != nil {
						return nil, err
					}
				}
				classes[key] = append(classes[key], class.ID)
			}
		}
	}
	return classes, nil
}
