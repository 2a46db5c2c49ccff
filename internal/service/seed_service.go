package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/leaderboard-seeder/internal/generator"
	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

// Stage names reported in logs, metrics and failures.
const (
	StageWipe            = "wipe"
	StageGenerate        = "generate"
	StageVerify          = "verify"
	StageValidate        = "validate records"
	StageInsertStaff     = "insert staff"
	StageInsertClasses   = "insert classes"
	StageInsertStudents  = "insert students"
	StageInsertEvents    = "insert events"
	StageRosterExport    = "roster export"
	StageLeaderboard     = "leaderboard publish"
	StageMetricsPush     = "metrics push"
	maxValidationReports = 10
)

type staffStore interface {
	Clear(ctx context.Context) error
	BulkInsert(ctx context.Context, staff []models.StaffMember) (int, error)
}

type classStore interface {
	Clear(ctx context.Context) error
	BulkInsert(ctx context.Context, classes []models.ClassGroup) (int, error)
}

type studentStore interface {
	Clear(ctx context.Context) error
	BulkInsert(ctx context.Context, students []models.Student) (int, error)
}

type eventStore interface {
	Clear(ctx context.Context) error
	BulkInsert(ctx context.Context, events []models.Event) (int, error)
}

type graphGenerator interface {
	Generate() (*generator.Graph, generator.Report, error)
}

type rosterExporter interface {
	Export(graph *generator.Graph) (*RosterResult, error)
}

type leaderboardPublisher interface {
	Publish(ctx context.Context, students []models.Student) (int, error)
}

// Stores groups the per-entity persistence sinks.
type Stores struct {
	Staff    staffStore
	Classes  classStore
	Students studentStore
	Events   eventStore
}

// SideOutputs are optional consumers run after persistence. Nil members are skipped.
type SideOutputs struct {
	Roster      rosterExporter
	Leaderboard leaderboardPublisher
}

// Summary describes the outcome of a seeding run.
type Summary struct {
	Generated       generator.Counts
	Inserted        generator.Counts
	EventsByStatus  map[models.EventStatus]int
	SkippedStudents []string
	FailedStage     string
	Duration        time.Duration
	Roster          *RosterResult
	LeaderboardSize int
	Warnings        []string
}

// SeedService wipes the store and repopulates it with a freshly generated graph.
type SeedService struct {
	stores   Stores
	gen      graphGenerator
	domain   generator.Config
	validate *validator.Validate
	outputs  SideOutputs
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewSeedService constructs a SeedService.
func NewSeedService(stores Stores, gen graphGenerator, domain generator.Config, validate *validator.Validate, outputs SideOutputs, metrics *MetricsService, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SeedService{
		stores:   stores,
		gen:      gen,
		domain:   domain,
		validate: validate,
		outputs:  outputs,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes wipe, generate, verify, insert and side outputs in order.
// The summary is always returned; on failure FailedStage names the stage that stopped the run.
func (s *SeedService) Run(ctx context.Context) (Summary, error) {
	started := s.now()
	summary := Summary{}

	fail := func(stage string, err error) (Summary, error) {
		summary.FailedStage = stage
		summary.Duration = s.now().Sub(started)
		return summary, err
	}

	if err := s.timed(StageWipe, func() error { return s.wipe(ctx) }); err != nil {
		return fail(StageWipe, persistenceError(StageWipe, err))
	}

	var (
		graph  *generator.Graph
		report generator.Report
	)
	err := s.timed(StageGenerate, func() error {
		var genErr error
		graph, report, genErr = s.gen.Generate()
		return genErr
	})
	if err != nil {
		return fail(StageGenerate, err)
	}
	summary.Generated = report.Counts
	summary.EventsByStatus = report.EventsByStatus
	summary.SkippedStudents = report.SkippedStudents
	s.metrics.RecordEvents(report.EventsByStatus)
	s.metrics.RecordSkipped(len(report.SkippedStudents))

	err = s.timed(StageVerify, func() error {
		if len(report.SkippedStudents) > 0 {
			return appErrors.Wrap(
				fmt.Errorf("students without a class: %v", report.SkippedStudents),
				appErrors.ErrInvariant.Code, StageVerify,
				fmt.Sprintf("%d students skipped during event generation", len(report.SkippedStudents)),
			)
		}
		return generator.Verify(s.domain, graph)
	})
	if err != nil {
		return fail(StageVerify, err)
	}

	if err := s.timed(StageValidate, func() error { return s.validateRecords(graph) }); err != nil {
		return fail(StageValidate, err)
	}

	if stage, err := s.insert(ctx, graph, &summary.Inserted); err != nil {
		return fail(stage, persistenceError(stage, err))
	}
	s.logger.Info("graph persisted",
		zap.Int("staff", summary.Inserted.Staff),
		zap.Int("classes", summary.Inserted.Classes),
		zap.Int("students", summary.Inserted.Students),
		zap.Int("events", summary.Inserted.Events),
	)

	s.runSideOutputs(ctx, graph, &summary)
	summary.Duration = s.now().Sub(started)
	return summary, nil
}

func (s *SeedService) wipe(ctx context.Context) error {
	steps := []struct {
		entity string
		clear  func(context.Context) error
	}{
		{"events", s.stores.Events.Clear},
		{"students", s.stores.Students.Clear},
		{"classes", s.stores.Classes.Clear},
		{"staff", s.stores.Staff.Clear},
	}
	for _, step := range steps {
		if err := step.clear(ctx); err != nil {
			return err
		}
		s.logger.Debug("table cleared", zap.String("entity", step.entity))
	}
	return nil
}

func (s *SeedService) insert(ctx context.Context, graph *generator.Graph, inserted *generator.Counts) (string, error) {
	steps := []struct {
		stage  string
		entity string
		target *int
		run    func() (int, error)
	}{
		{StageInsertStaff, "staff", &inserted.Staff, func() (int, error) { return s.stores.Staff.BulkInsert(ctx, graph.Staff) }},
		{StageInsertClasses, "classes", &inserted.Classes, func() (int, error) { return s.stores.Classes.BulkInsert(ctx, graph.Classes) }},
		{StageInsertStudents, "students", &inserted.Students, func() (int, error) { return s.stores.Students.BulkInsert(ctx, graph.Students) }},
		{StageInsertEvents, "events", &inserted.Events, func() (int, error) { return s.stores.Events.BulkInsert(ctx, graph.Events) }},
	}
	for _, step := range steps {
		var n int
		err := s.timed(step.stage, func() error {
			var runErr error
			n, runErr = step.run()
			return runErr
		})
		*step.target = n
		s.metrics.RecordInserted(step.entity, n)
		if err != nil {
			return step.stage, err
		}
	}
	return "", nil
}

func (s *SeedService) validateRecords(graph *generator.Graph) error {
	var errs []error
	check := func(kind, id string, record interface{}) {
		if len(errs) >= maxValidationReports {
			return
		}
		if err := s.validate.Struct(record); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", kind, id, err))
		}
	}
	for i := range graph.Staff {
		check("staff", graph.Staff[i].ID, &graph.Staff[i])
	}
	for i := range graph.Classes {
		check("class", graph.Classes[i].ID, &graph.Classes[i])
	}
	for i := range graph.Students {
		check("student", graph.Students[i].ID, &graph.Students[i])
	}
	for i := range graph.Events {
		check("event", graph.Events[i].ID, &graph.Events[i])
	}
	if len(errs) == 0 {
		return nil
	}
	return appErrors.Wrap(errors.Join(errs...), appErrors.ErrInvariant.Code, StageValidate, "records failed validation")
}

func (s *SeedService) runSideOutputs(ctx context.Context, graph *generator.Graph, summary *Summary) {
	warn := func(stage string, err error) {
		wrapped := appErrors.Wrap(err, appErrors.ErrSideOutput.Code, stage, appErrors.ErrSideOutput.Message)
		summary.Warnings = append(summary.Warnings, wrapped.Error())
		s.logger.Warn("side output failed", zap.String("stage", stage), zap.Error(err))
	}

	if s.outputs.Roster != nil {
		err := s.timed(StageRosterExport, func() error {
			result, err := s.outputs.Roster.Export(graph)
			summary.Roster = result
			return err
		})
		if err != nil {
			warn(StageRosterExport, err)
		}
	}

	if s.outputs.Leaderboard != nil {
		err := s.timed(StageLeaderboard, func() error {
			n, err := s.outputs.Leaderboard.Publish(ctx, graph.Students)
			summary.LeaderboardSize = n
			return err
		})
		if err != nil {
			warn(StageLeaderboard, err)
		}
	}

	if s.metrics.PushEnabled() {
		if err := s.metrics.Push(ctx); err != nil {
			warn(StageMetricsPush, err)
		}
	}
}

func (s *SeedService) timed(stage string, fn func() error) error {
	start := s.now()
	err := fn()
	elapsed := s.now().Sub(start)
	s.metrics.ObserveStage(stage, elapsed)
	if err != nil {
		s.logger.Error("stage failed", zap.String("stage", stage), zap.Duration("elapsed", elapsed), zap.Error(err))
		return err
	}
	s.logger.Info("stage completed", zap.String("stage", stage), zap.Duration("elapsed", elapsed))
	return nil
}

func persistenceError(stage string, err error) error {
	return appErrors.Wrap(err, appErrors.ErrPersistence.Code, stage, appErrors.ErrPersistence.Message)
}
