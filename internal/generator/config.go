package generator

import (
	"fmt"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

// Config is the static domain configuration a run is generated from.
type Config struct {
	Departments           []string
	Years                 []int
	Sections              []string
	ClassesPerYearPerDept int
	StudentsPerClass      int
	MaxEventsPerStudent   int

	RegistrationYears map[int]int
	AcademicSpans     map[int]string
	CurrentAcademicYr string
	Program           string
	DefaultPassword   string

	Categories         []models.EventCategory
	CompetitiveSubset  []models.EventCategory
	Statuses           []models.EventStatus
	StatusWeights      []float64
	Positions          []models.Position
	Locations          []string
	Scopes             []models.EventScope
	Organizers         []string
	ParticipationTypes []string
	Colleges           []string
	Points             map[models.Position]map[models.EventScope]int
	PrizeMoneyMin      int
	PrizeMoneyMax      int
}

// DefaultConfig returns the configuration used by the seeder binary.
func DefaultConfig() Config {
	return Config{
		Departments:           []string{"CSE", "ECE", "EEE", "MECH", "CIVIL", "IT"},
		Years:                 []int{1, 2, 3, 4},
		Sections:              []string{"A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2", "E1", "E2"},
		ClassesPerYearPerDept: 20,
		StudentsPerClass:      20,
		MaxEventsPerStudent:   5,
		RegistrationYears:     map[int]int{1: 2024, 2: 2023, 3: 2022, 4: 2021},
		AcademicSpans:         map[int]string{1: "2024-2028", 2: "2023-2027", 3: "2022-2026", 4: "2021-2025"},
		CurrentAcademicYr:     "2024-2025",
		Program:               "BTech",
		DefaultPassword:       "password123",
		Categories: []models.EventCategory{
			models.CategoryHackathon, models.CategoryIdeathon, models.CategoryCoding,
			models.CategoryGlobalCertificates, models.CategoryWorkshop, models.CategoryConference,
			models.CategoryOthers,
		},
		CompetitiveSubset: []models.EventCategory{
			models.CategoryHackathon, models.CategoryIdeathon, models.CategoryCoding,
			models.CategoryWorkshop, models.CategoryConference,
		},
		Statuses:      []models.EventStatus{models.EventStatusPending, models.EventStatusApproved, models.EventStatusRejected},
		StatusWeights: []float64{0.2, 0.7, 0.1},
		Positions: []models.Position{
			models.PositionFirst, models.PositionSecond, models.PositionThird,
			models.PositionParticipant, models.PositionNone,
		},
		Locations:          []string{models.LocationWithinCollege, models.LocationOutsideCollege},
		Scopes:             []models.EventScope{models.ScopeInternational, models.ScopeNational, models.ScopeState},
		Organizers:         []string{"Industry Based", "College Based"},
		ParticipationTypes: []string{"Individual", "Team"},
		Colleges:           []string{"IIT Madras", "NIT Trichy", "VIT University", "SRM University", "Anna University"},
		Points: map[models.Position]map[models.EventScope]int{
			models.PositionFirst:       {models.ScopeInternational: 100, models.ScopeNational: 75, models.ScopeState: 50},
			models.PositionSecond:      {models.ScopeInternational: 75, models.ScopeNational: 50, models.ScopeState: 30},
			models.PositionThird:       {models.ScopeInternational: 50, models.ScopeNational: 30, models.ScopeState: 20},
			models.PositionParticipant: {models.ScopeInternational: 25, models.ScopeNational: 15, models.ScopeState: 10},
			models.PositionNone:        {models.ScopeInternational: 10, models.ScopeNational: 5, models.ScopeState: 3},
		},
		PrizeMoneyMin: 1000,
		PrizeMoneyMax: 50000,
	}
}

// IsCompetitive reports whether the category carries competition fields.
func (c Config) IsCompetitive(category models.EventCategory) bool {
	for _, candidate := range c.CompetitiveSubset {
		if candidate == category {
			return true
		}
	}
	return false
}

// Validate rejects configurations the generators cannot honour.
func (c Config) Validate() error {
	switch {
	case len(c.Departments) == 0:
		return fmt.Errorf("at least one department is required")
	case len(c.Years) == 0:
		return fmt.Errorf("at least one cohort year is required")
	case len(c.Sections) == 0:
		return fmt.Errorf("at least one section is required")
	case c.ClassesPerYearPerDept <= 0:
		return fmt.Errorf("classes per year per department must be positive")
	case c.StudentsPerClass < 0:
		return fmt.Errorf("students per class must not be negative")
	case c.MaxEventsPerStudent < 0:
		return fmt.Errorf("max events per student must not be negative")
	case len(c.Categories) == 0 || len(c.Positions) == 0:
		return fmt.Errorf("event categories and positions are required")
	case len(c.Statuses) == 0 || len(c.Statuses) != len(c.StatusWeights):
		return fmt.Errorf("each status needs exactly one weight")
	case len(c.Locations) == 0 || len(c.Scopes) == 0 || len(c.Organizers) == 0 || len(c.ParticipationTypes) == 0 || len(c.Colleges) == 0:
		return fmt.Errorf("competition vocabularies must not be empty")
	case c.PrizeMoneyMin > c.PrizeMoneyMax:
		return fmt.Errorf("prize money range is inverted")
	case c.DefaultPassword == "":
		return fmt.Errorf("default password is required")
	}

	seen := make(map[string]struct{}, len(c.Departments))
	for _, dept := range c.Departments {
		if _, dup := seen[dept]; dup {
			return fmt.Errorf("duplicate department %q", dept)
		}
		seen[dept] = struct{}{}
	}
	for _, year := range c.Years {
		if _, ok := c.RegistrationYears[year]; !ok {
			return fmt.Errorf("no registration year for cohort year %d", year)
		}
		if _, ok := c.AcademicSpans[year]; !ok {
			return fmt.Errorf("no academic span for cohort year %d", year)
		}
	}
	for _, category := range c.CompetitiveSubset {
		known := false
		for _, candidate := range c.Categories {
			if candidate == category {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("competitive category %q is not a known category", category)
		}
	}
	for _, position := range c.Positions {
		row, ok := c.Points[position]
		if !ok {
			return fmt.Errorf("no points row for position %q", position)
		}
		for _, scope := range c.Scopes {
			if _, ok := row[scope]; !ok {
				return fmt.Errorf("no points for position %q at scope %q", position, scope)
			}
		}
	}
	var total float64
	for _, w := range c.StatusWeights {
		if w < 0 {
			return fmt.Errorf("status weights must not be negative")
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("status weights must sum to a positive value")
	}
	return nil
}
