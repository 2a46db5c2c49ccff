package models

import "time"

// EventCategory is the kind of achievement a student submits.
type EventCategory string

const (
	CategoryHackathon          EventCategory = "Hackathon"
	CategoryIdeathon           EventCategory = "Ideathon"
	CategoryCoding             EventCategory = "Coding"
	CategoryGlobalCertificates EventCategory = "Global-Certificates"
	CategoryWorkshop           EventCategory = "Workshop"
	CategoryConference         EventCategory = "Conference"
	CategoryOthers             EventCategory = "Others"
)

// EventStatus tracks the review state of a submission.
type EventStatus string

const (
	EventStatusPending  EventStatus = "Pending"
	EventStatusApproved EventStatus = "Approved"
	EventStatusRejected EventStatus = "Rejected"
)

// Position is the rank a student secured.
type Position string

const (
	PositionFirst       Position = "First"
	PositionSecond      Position = "Second"
	PositionThird       Position = "Third"
	PositionParticipant Position = "Participant"
	PositionNone        Position = "None"
)

// Placing reports whether the position is a top-three finish.
func (p Position) Placing() bool {
	return p == PositionFirst || p == PositionSecond || p == PositionThird
}

// EventScope is the geographic reach of a competitive event.
type EventScope string

const (
	ScopeInternational EventScope = "International"
	ScopeNational      EventScope = "National"
	ScopeState         EventScope = "State"
)

// Location values.
const (
	LocationWithinCollege  = "Within College"
	LocationOutsideCollege = "Outside College"
)

// EventKind discriminates the Event variant.
type EventKind int

const (
	KindNonCompetitive EventKind = iota
	KindCompetitive
)

func (k EventKind) String() string {
	if k == KindCompetitive {
		return "competitive"
	}
	return "non-competitive"
}

// Competition holds the fields that only competitive categories carry.
type Competition struct {
	Location          string     `json:"eventLocation" validate:"required,oneof='Within College' 'Outside College'"`
	OtherCollegeName  *string    `json:"otherCollegeName,omitempty"`
	Scope             EventScope `json:"eventScope" validate:"required"`
	Organizer         string     `json:"eventOrganizer" validate:"required"`
	ParticipationType string     `json:"participationType" validate:"required"`
	PrizeMoney        *int       `json:"priceMoney,omitempty"`
}

// Event is an achievement submitted by a student. Competition is nil for
// non-competitive categories.
type Event struct {
	ID              string        `json:"id" validate:"required"`
	EventName       string        `json:"eventName" validate:"required"`
	Description     string        `json:"description"`
	Date            time.Time     `json:"date" validate:"required"`
	ProofURL        string        `json:"proofUrl" validate:"required,url"`
	PDFDocument     string        `json:"pdfDocument" validate:"required,url"`
	Category        EventCategory `json:"category" validate:"required"`
	PositionSecured Position      `json:"positionSecured" validate:"required"`
	Status          EventStatus   `json:"status" validate:"required,oneof=Pending Approved Rejected"`
	PointsEarned    int           `json:"pointsEarned" validate:"gte=0"`
	SubmittedBy     string        `json:"submittedBy" validate:"required"`
	ApprovedBy      *string       `json:"approvedBy,omitempty"`
	Competition     *Competition  `json:"competition,omitempty" validate:"omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Kind reports which variant the event is.
func (e *Event) Kind() EventKind {
	if e.Competition != nil {
		return KindCompetitive
	}
	return KindNonCompetitive
}
