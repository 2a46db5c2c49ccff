package generator

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

// CredentialHasher turns a plaintext password into a stored digest.
type CredentialHasher interface {
	Hash(plain string) (string, error)
}

// Dependencies are the collaborators a Generator draws on. Nil fields fall
// back to defaults, except Hasher which is required.
type Dependencies struct {
	IDs     Allocator
	Sampler Sampler
	Text    TextSource
	Hasher  CredentialHasher
	Now     func() time.Time
	Logger  *zap.Logger
}

// Report describes a finished generation pass.
type Report struct {
	Counts          Counts
	EventsByStatus  map[models.EventStatus]int
	SkippedStudents []string
}

// Generator builds the full entity graph for one run.
type Generator struct {
	cfg     Config
	ids     Allocator
	sampler Sampler
	text    TextSource
	hasher  CredentialHasher
	now     func() time.Time
	logger  *zap.Logger
}

type cohortKey struct {
	dept string
	year int
}

// New validates cfg and wires the generator.
func New(cfg Config, deps Dependencies) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConfigInvalid.Code, "configure", "invalid domain configuration")
	}
	if deps.Hasher == nil {
		return nil, appErrors.Clone(appErrors.ErrConfigInvalid, "credential hasher is required")
	}
	if deps.IDs == nil {
		deps.IDs = UUIDAllocator{}
	}
	seed := time.Now().UnixNano()
	if deps.Sampler == nil {
		deps.Sampler = NewRandSampler(seed)
	}
	if deps.Text == nil {
		deps.Text = NewFakerText(seed)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Generator{
		cfg:     cfg,
		ids:     deps.IDs,
		sampler: deps.Sampler,
		text:    deps.Text,
		hasher:  deps.Hasher,
		now:     deps.Now,
		logger:  deps.Logger,
	}, nil
}

// Generate runs every stage in dependency order and returns the finished graph.
func (g *Generator) Generate() (*Graph, Report, error) {
	report := Report{EventsByStatus: make(map[models.EventStatus]int)}

	digest, err := g.hasher.Hash(g.cfg.DefaultPassword)
	if err != nil {
		return nil, report, appErrors.Wrap(err, appErrors.ErrCredential.Code, "hash credentials", appErrors.ErrCredential.Message)
	}

	now := g.now().UTC()
	arena := NewArena()

	pools, err := g.generateStaff(arena, digest, now)
	if err != nil {
		return nil, report, stageError(err, "generate staff")
	}
	g.logger.Info("staff generated", zap.Int("count", len(arena.staffOrder)))

	classes, err := g.generateClasses(arena, pools, now)
	if err != nil {
		return nil, report, stageError(err, "generate classes")
	}
	g.logger.Info("classes generated", zap.Int("count", len(arena.classOrder)))

	if err := g.generateStudents(arena, classes, digest, now); err != nil {
		return nil, report, stageError(err, "generate students")
	}
	g.logger.Info("students generated", zap.Int("count", len(arena.studentOrder)))

	skipped, err := g.generateEvents(arena, now, report.EventsByStatus)
	if err != nil {
		return nil, report, stageError(err, "generate events")
	}
	report.SkippedStudents = skipped
	g.logger.Info("events generated", zap.Int("count", len(arena.events)), zap.Int("skipped_students", len(skipped)))

	graph := arena.Finalize()
	report.Counts = graph.Counts()
	return graph, report, nil
}

func stageError(err error, stage string) error {
	return appErrors.WithStage(appErrors.FromError(err), stage)
}
