package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/leaderboard-seeder/internal/generator"
	"github.com/noah-isme/leaderboard-seeder/pkg/export"
)

const studentRosterRole = "Student"

var rosterHeaders = []string{"role", "name", "register_no", "email", "department", "password"}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
}

type tableRenderer interface {
	Render(table export.Table) ([]byte, error)
}

// RosterResult lists the files written by an export.
type RosterResult struct {
	CSVPath string
	PDFPath string
	Rows    int
}

// RosterService writes the login roster for seeded accounts.
type RosterService struct {
	storage  fileStorage
	csv      tableRenderer
	pdf      tableRenderer
	password string
	now      func() time.Time
	logger   *zap.Logger
}

// NewRosterService constructs a RosterService. Nil renderers use the default exporters.
func NewRosterService(storage fileStorage, password string, logger *zap.Logger, csv, pdf tableRenderer) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &RosterService{
		storage:  storage,
		csv:      csv,
		pdf:      pdf,
		password: password,
		now:      time.Now,
		logger:   logger,
	}
}

// Table builds the roster: staff in generation order followed by students.
func (s *RosterService) Table(graph *generator.Graph) export.Table {
	rows := make([][]string, 0, len(graph.Staff)+len(graph.Students))
	for _, member := range graph.Staff {
		rows = append(rows, []string{string(member.Role), member.Name, member.RegisterNo, member.Email, member.Department, s.password})
	}
	for _, student := range graph.Students {
		rows = append(rows, []string{studentRosterRole, student.Name, student.RegisterNo, student.Email, student.Department, s.password})
	}
	return export.Table{Title: "Seeded account roster", Headers: rosterHeaders, Rows: rows}
}

// Export renders the roster as CSV and PDF and stores both.
func (s *RosterService) Export(graph *generator.Graph) (*RosterResult, error) {
	if graph == nil {
		return nil, fmt.Errorf("roster export: no graph")
	}
	table := s.Table(graph)
	base := fmt.Sprintf("roster-%s", s.now().UTC().Format("20060102T150405Z"))

	csvBytes, err := s.csv.Render(table)
	if err != nil {
		return nil, fmt.Errorf("render roster csv: %w", err)
	}
	csvPath, err := s.storage.Save(base+".csv", csvBytes)
	if err != nil {
		return nil, fmt.Errorf("store roster csv: %w", err)
	}

	pdfBytes, err := s.pdf.Render(table)
	if err != nil {
		return nil, fmt.Errorf("render roster pdf: %w", err)
	}
	pdfPath, err := s.storage.Save(base+".pdf", pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("store roster pdf: %w", err)
	}

	s.logger.Info("roster exported", zap.String("csv", csvPath), zap.String("pdf", pdfPath), zap.Int("rows", len(table.Rows)))
	return &RosterResult{CSVPath: csvPath, PDFPath: pdfPath, Rows: len(table.Rows)}, nil
}
