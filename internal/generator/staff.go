package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

type staffPools struct {
	heads    map[string]string
	advisors map[cohortKey][]string
	faculty  map[cohortKey][]string
}

const advisorsPerCohort = 2

// generateStaff creates one head per department, two advisors per cohort and
// one faculty member per class to be created. Register numbers embed a run
// wide counter per role, so they never collide.
func (g *Generator) generateStaff(a *Arena, digest string, now time.Time) (staffPools, error) {
	pools := staffPools{
		heads:    make(map[string]string, len(g.cfg.Departments)),
		advisors: make(map[cohortKey][]string),
		faculty:  make(map[cohortKey][]string),
	}

	for _, dept := range g.cfg.Departments {
		head := g.newStaff(models.RoleDepartmentHead, dept, "Dr.", digest, now)
		head.RegisterNo = fmt.Sprintf("HOD-%s-001", dept)
		head.Email = fmt.Sprintf("hod.%s@college.edu", strings.ToLower(dept))
		if err := a.addStaff(head); err != nil {
			return pools, err
		}
		pools.heads[dept] = head.ID
	}

	counter := 1
	for _, dept := range g.cfg.Departments {
		for _, year := range g.cfg.Years {
			key := cohortKey{dept: dept, year: year}
			for i := 0; i < advisorsPerCohort; i++ {
				advisor := g.newStaff(models.RoleAcademicAdvisor, dept, "Dr.", digest, now)
				advisor.RegisterNo = fmt.Sprintf("ADV-%s-%d-%03d", dept, year, counter)
				advisor.Email = fmt.Sprintf("advisor%d.%s@college.edu", counter, strings.ToLower(dept))
				if err := a.addStaff(advisor); err != nil {
					return pools, err
				}
				pools.advisors[key] = append(pools.advisors[key], advisor.ID)
				counter++
			}
		}
	}

	counter = 1
	for _, dept := range g.cfg.Departments {
		for _, year := range g.cfg.Years {
			key := cohortKey{dept: dept, year: year}
			for i := 0; i < g.cfg.ClassesPerYearPerDept; i++ {
				member := g.newStaff(models.RoleFaculty, dept, "Prof.", digest, now)
				member.RegisterNo = fmt.Sprintf("FAC-%s-%d-%03d", dept, year, counter)
				member.Email = fmt.Sprintf("faculty%d.%s@college.edu", counter, strings.ToLower(dept))
				if err := a.addStaff(member); err != nil {
					return pools, err
				}
				pools.faculty[key] = append(pools.faculty[key], member.ID)
				counter++
			}
		}
	}

	return pools, nil
}

func (g *Generator) newStaff(role models.StaffRole, dept, title, digest string, now time.Time) models.StaffMember {
	return models.StaffMember{
		ID:           g.ids.Allocate(),
		Name:         fmt.Sprintf("%s %s", title, g.text.Name()),
		PasswordHash: digest,
		Role:         role,
		Department:   dept,
		Classes:      []string{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
