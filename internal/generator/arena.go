package generator

import (
	"fmt"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

// Arena owns every record of a run while it is still being wired. Later
// stages change earlier records only through the patch methods below.
type Arena struct {
	staff    map[string]*models.StaffMember
	classes  map[string]*models.ClassGroup
	students map[string]*models.Student

	staffOrder   []string
	classOrder   []string
	studentOrder []string
	events       []models.Event
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{
		staff:    make(map[string]*models.StaffMember),
		classes:  make(map[string]*models.ClassGroup),
		students: make(map[string]*models.Student),
	}
}

func (a *Arena) addStaff(member models.StaffMember) error {
	if _, dup := a.staff[member.ID]; dup {
		return duplicateID("staff", member.ID)
	}
	if member.Classes == nil {
		member.Classes = []string{}
	}
	a.staff[member.ID] = &member
	a.staffOrder = append(a.staffOrder, member.ID)
	return nil
}

func (a *Arena) addClass(class models.ClassGroup) error {
	if _, dup := a.classes[class.ID]; dup {
		return duplicateID("class", class.ID)
	}
	if class.Students == nil {
		class.Students = []string{}
	}
	a.classes[class.ID] = &class
	a.classOrder = append(a.classOrder, class.ID)
	return nil
}

func (a *Arena) addStudent(student models.Student) error {
	if _, dup := a.students[student.ID]; dup {
		return duplicateID("student", student.ID)
	}
	if student.EventsParticipated == nil {
		student.EventsParticipated = []string{}
	}
	a.students[student.ID] = &student
	a.studentOrder = append(a.studentOrder, student.ID)
	return nil
}

// AssignClass appends classID to the staff member's class list.
func (a *Arena) AssignClass(staffID, classID string) error {
	member, ok := a.staff[staffID]
	if !ok {
		return unknownID("staff", staffID)
	}
	if _, ok := a.classes[classID]; !ok {
		return unknownID("class", classID)
	}
	member.Classes = append(member.Classes, classID)
	return nil
}

// Enroll appends studentID to the class roster. The student must already
// reference the class.
func (a *Arena) Enroll(classID, studentID string) error {
	class, ok := a.classes[classID]
	if !ok {
		return unknownID("class", classID)
	}
	student, ok := a.students[studentID]
	if !ok {
		return unknownID("student", studentID)
	}
	if student.ClassID != classID {
		return appErrors.Clone(appErrors.ErrInvariant, fmt.Sprintf("student %s belongs to class %s, not %s", studentID, student.ClassID, classID))
	}
	class.Students = append(class.Students, studentID)
	return nil
}

// RecordEvent stores the event, appends it to the submitter's list and, when
// approved, adds its points to the submitter's total.
func (a *Arena) RecordEvent(event models.Event) error {
	student, ok := a.students[event.SubmittedBy]
	if !ok {
		return unknownID("student", event.SubmittedBy)
	}
	student.EventsParticipated = append(student.EventsParticipated, event.ID)
	if event.Status == models.EventStatusApproved {
		student.TotalPoints += event.PointsEarned
	}
	a.events = append(a.events, event)
	return nil
}

// Class looks up a class by id.
func (a *Arena) Class(id string) (*models.ClassGroup, bool) {
	class, ok := a.classes[id]
	return class, ok
}

// Staff looks up a staff member by id.
func (a *Arena) Staff(id string) (*models.StaffMember, bool) {
	member, ok := a.staff[id]
	return member, ok
}

// StudentIDs returns student ids in creation order.
func (a *Arena) StudentIDs() []string {
	return append([]string(nil), a.studentOrder...)
}

// Student looks up a student by id.
func (a *Arena) Student(id string) (*models.Student, bool) {
	student, ok := a.students[id]
	return student, ok
}

// Finalize copies every record out of the arena in creation order. Slices in
// the returned graph do not alias arena state.
func (a *Arena) Finalize() *Graph {
	g := &Graph{
		Staff:    make([]models.StaffMember, 0, len(a.staffOrder)),
		Classes:  make([]models.ClassGroup, 0, len(a.classOrder)),
		Students: make([]models.Student, 0, len(a.studentOrder)),
		Events:   make([]models.Event, len(a.events)),
	}
	for _, id := range a.staffOrder {
		member := *a.staff[id]
		member.Classes = append([]string{}, member.Classes...)
		g.Staff = append(g.Staff, member)
	}
	for _, id := range a.classOrder {
		class := *a.classes[id]
		class.AssignedFaculty = append([]string{}, class.AssignedFaculty...)
		class.AcademicAdvisors = append([]string{}, class.AcademicAdvisors...)
		class.Students = append([]string{}, class.Students...)
		g.Classes = append(g.Classes, class)
	}
	for _, id := range a.studentOrder {
		student := *a.students[id]
		student.EventsParticipated = append([]string{}, student.EventsParticipated...)
		student.ClassHistory = append([]models.ClassHistoryEntry{}, student.ClassHistory...)
		student.Achievements = append([]string{}, student.Achievements...)
		g.Students = append(g.Students, student)
	}
	copy(g.Events, a.events)
	return g
}

// Graph is the finished, flattened dataset of a run.
type Graph struct {
	Staff    []models.StaffMember
	Classes  []models.ClassGroup
	Students []models.Student
	Events   []models.Event
}

// Counts summarises the graph cardinalities.
func (g *Graph) Counts() Counts {
	return Counts{Staff: len(g.Staff), Classes: len(g.Classes), Students: len(g.Students), Events: len(g.Events)}
}

// Counts holds one number per entity type.
type Counts struct {
	Staff    int `json:"staff"`
	Classes  int `json:"classes"`
	Students int `json:"students"`
	Events   int `json:"events"`
}

func unknownID(kind, id string) error {
	return appErrors.Clone(appErrors.ErrInvariant, fmt.Sprintf("unknown %s id %q", kind, id))
}

func duplicateID(kind, id string) error {
	return appErrors.Clone(appErrors.ErrInvariant, fmt.Sprintf("duplicate %s id %q", kind, id))
}
