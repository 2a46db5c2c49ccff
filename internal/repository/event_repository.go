package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

// eventRow flattens the event variant into nullable columns. Competition
// columns are NULL for non-competitive events.
type eventRow struct {
	ID                string    `db:"id"`
	EventName         string    `db:"event_name"`
	Description       string    `db:"description"`
	Date              time.Time `db:"date"`
	ProofURL          string    `db:"proof_url"`
	PDFDocument       string    `db:"pdf_document"`
	Category          string    `db:"category"`
	PositionSecured   string    `db:"position_secured"`
	Status            string    `db:"status"`
	PointsEarned      int       `db:"points_earned"`
	SubmittedBy       string    `db:"submitted_by"`
	ApprovedBy        *string   `db:"approved_by"`
	EventLocation     *string   `db:"event_location"`
	OtherCollegeName  *string   `db:"other_college_name"`
	EventScope        *string   `db:"event_scope"`
	EventOrganizer    *string   `db:"event_organizer"`
	ParticipationType *string   `db:"participation_type"`
	PrizeMoney        *int      `db:"prize_money"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func toEventRow(e models.Event) eventRow {
	row := eventRow{
		ID:              e.ID,
		EventName:       e.EventName,
		Description:     e.Description,
		Date:            e.Date,
		ProofURL:        e.ProofURL,
		PDFDocument:     e.PDFDocument,
		Category:        string(e.Category),
		PositionSecured: string(e.PositionSecured),
		Status:          string(e.Status),
		PointsEarned:    e.PointsEarned,
		SubmittedBy:     e.SubmittedBy,
		ApprovedBy:      e.ApprovedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if c := e.Competition; c != nil {
		scope := string(c.Scope)
		row.EventLocation = &c.Location
		row.OtherCollegeName = c.OtherCollegeName
		row.EventScope = &scope
		row.EventOrganizer = &c.Organizer
		row.ParticipationType = &c.ParticipationType
		row.PrizeMoney = c.PrizeMoney
	}
	return row
}

// EventRepository persists achievement events.
type EventRepository struct {
	db        *sqlx.DB
	batchSize int
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB, batchSize int) *EventRepository {
	return &EventRepository{db: db, batchSize: normaliseBatchSize(batchSize)}
}

// Clear removes every event record.
func (r *EventRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "events")
}

// BulkInsert writes events in batches.
func (r *EventRepository) BulkInsert(ctx context.Context, events []models.Event) (int, error) {
	rows := make([]eventRow, len(events))
	for i := range events {
		rows[i] = toEventRow(events[i])
	}
	const query = `INSERT INTO events (id, event_name, description, date, proof_url, pdf_document, category, position_secured, status, points_earned,
        submitted_by, approved_by, event_location, other_college_name, event_scope, event_organizer, participation_type, prize_money, created_at, updated_at)
        VALUES (:id, :event_name, :description, :date, :proof_url, :pdf_document, :category, :position_secured, :status, :points_earned,
        :submitted_by, :approved_by, :event_location, :other_college_name, :event_scope, :event_organizer, :participation_type, :prize_money, :created_at, :updated_at)`
	return bulkInsert(ctx, r.db, "events", query, rows, r.batchSize)
}
