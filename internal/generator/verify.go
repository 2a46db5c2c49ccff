package generator

import (
	"errors"
	"fmt"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

const maxReportedViolations = 20

type violations struct {
	errs  []error
	total int
}

func (v *violations) addf(format string, args ...interface{}) {
	v.total++
	if len(v.errs) < maxReportedViolations {
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	}
}

// Verify checks the structural invariants of a finished graph: unique
// identities and register numbers, two-way class membership, staff back
// references, score aggregates and the event variant rules.
func Verify(cfg Config, g *Graph) error {
	v := &violations{}

	ids := make(map[string]string)
	claim := func(kind, id string) {
		if id == "" {
			v.addf("%s with empty id", kind)
			return
		}
		if prev, dup := ids[id]; dup {
			v.addf("id %s used by both %s and %s", id, prev, kind)
			return
		}
		ids[id] = kind
	}

	staffByID := make(map[string]*models.StaffMember, len(g.Staff))
	registerNos := make(map[string]struct{}, len(g.Staff))
	for i := range g.Staff {
		member := &g.Staff[i]
		claim("staff", member.ID)
		staffByID[member.ID] = member
		if _, dup := registerNos[member.RegisterNo]; dup {
			v.addf("duplicate staff register number %s", member.RegisterNo)
		}
		registerNos[member.RegisterNo] = struct{}{}
	}

	classByID := make(map[string]*models.ClassGroup, len(g.Classes))
	classNames := make(map[string]struct{}, len(g.Classes))
	for i := range g.Classes {
		class := &g.Classes[i]
		claim("class", class.ID)
		classByID[class.ID] = class
		if cfg.ClassesPerYearPerDept <= len(cfg.Sections) {
			if _, dup := classNames[class.ClassName]; dup {
				v.addf("duplicate class name %s", class.ClassName)
			}
			classNames[class.ClassName] = struct{}{}
		}

		if len(class.AssignedFaculty) != 1 {
			v.addf("class %s has %d assigned faculty", class.ID, len(class.AssignedFaculty))
		}
		if len(class.AcademicAdvisors) == 0 {
			v.addf("class %s has no academic advisors", class.ID)
		}
		for _, staffID := range append(append([]string{}, class.AssignedFaculty...), class.AcademicAdvisors...) {
			member, ok := staffByID[staffID]
			if !ok {
				v.addf("class %s references unknown staff %s", class.ID, staffID)
				continue
			}
			if !contains(member.Classes, class.ID) {
				v.addf("staff %s does not list class %s", staffID, class.ID)
			}
		}
	}
	for i := range g.Staff {
		member := &g.Staff[i]
		for _, classID := range member.Classes {
			class, ok := classByID[classID]
			if !ok {
				v.addf("staff %s lists unknown class %s", member.ID, classID)
				continue
			}
			if !contains(class.AssignedFaculty, member.ID) && !contains(class.AcademicAdvisors, member.ID) {
				v.addf("staff %s lists class %s which does not reference it", member.ID, classID)
			}
		}
	}

	studentByID := make(map[string]*models.Student, len(g.Students))
	studentRegNos := make(map[string]struct{}, len(g.Students))
	members := make(map[string]map[string]struct{}, len(g.Classes))
	for i := range g.Students {
		student := &g.Students[i]
		claim("student", student.ID)
		studentByID[student.ID] = student
		if _, dup := studentRegNos[student.RegisterNo]; dup {
			v.addf("duplicate student register number %s", student.RegisterNo)
		}
		studentRegNos[student.RegisterNo] = struct{}{}
		if _, ok := classByID[student.ClassID]; !ok {
			v.addf("student %s references unknown class %s", student.ID, student.ClassID)
		}
		if members[student.ClassID] == nil {
			members[student.ClassID] = make(map[string]struct{})
		}
		members[student.ClassID][student.ID] = struct{}{}
	}
	for i := range g.Classes {
		class := &g.Classes[i]
		roster := make(map[string]struct{}, len(class.Students))
		for _, studentID := range class.Students {
			if _, dup := roster[studentID]; dup {
				v.addf("class %s lists student %s twice", class.ID, studentID)
			}
			roster[studentID] = struct{}{}
			if _, ok := members[class.ID][studentID]; !ok {
				v.addf("class %s lists student %s which belongs elsewhere", class.ID, studentID)
			}
		}
		for studentID := range members[class.ID] {
			if _, ok := roster[studentID]; !ok {
				v.addf("student %s missing from class %s roster", studentID, class.ID)
			}
		}
	}

	approved := make(map[string]int, len(g.Students))
	submitted := make(map[string][]string, len(g.Students))
	for i := range g.Events {
		event := &g.Events[i]
		claim("event", event.ID)
		if _, ok := studentByID[event.SubmittedBy]; !ok {
			v.addf("event %s submitted by unknown student %s", event.ID, event.SubmittedBy)
		}
		submitted[event.SubmittedBy] = append(submitted[event.SubmittedBy], event.ID)
		verifyEvent(cfg, event, staffByID, v)
		if event.Status == models.EventStatusApproved {
			approved[event.SubmittedBy] += event.PointsEarned
		}
	}
	for i := range g.Students {
		student := &g.Students[i]
		if student.TotalPoints != approved[student.ID] {
			v.addf("student %s total points %d, approved events sum to %d", student.ID, student.TotalPoints, approved[student.ID])
		}
		if !equalOrdered(student.EventsParticipated, submitted[student.ID]) {
			v.addf("student %s event list does not match submitted events", student.ID)
		}
	}

	if v.total == 0 {
		return nil
	}
	return appErrors.Wrap(errors.Join(v.errs...), appErrors.ErrInvariant.Code, "verify graph",
		fmt.Sprintf("%d invariant violations", v.total))
}

func verifyEvent(cfg Config, event *models.Event, staffByID map[string]*models.StaffMember, v *violations) {
	competitive := cfg.IsCompetitive(event.Category)
	if competitive != (event.Kind() == models.KindCompetitive) {
		v.addf("event %s category %s has kind %s", event.ID, event.Category, event.Kind())
	}
	if event.PointsEarned > 0 && event.Status != models.EventStatusApproved {
		v.addf("event %s earns %d points while %s", event.ID, event.PointsEarned, event.Status)
	}
	if (event.Status == models.EventStatusPending) != (event.ApprovedBy == nil) {
		v.addf("event %s approver presence does not match status %s", event.ID, event.Status)
	}
	if event.ApprovedBy != nil {
		if _, ok := staffByID[*event.ApprovedBy]; !ok {
			v.addf("event %s approved by unknown staff %s", event.ID, *event.ApprovedBy)
		}
	}
	if c := event.Competition; c != nil {
		if (c.Location == models.LocationOutsideCollege) != (c.OtherCollegeName != nil) {
			v.addf("event %s other college presence does not match location %s", event.ID, c.Location)
		}
		if c.PrizeMoney != nil && !event.PositionSecured.Placing() {
			v.addf("event %s awards prize money to position %s", event.ID, event.PositionSecured)
		}
	} else if event.PointsEarned != 0 {
		v.addf("event %s earns points without a scope", event.ID)
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func equalOrdered(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
