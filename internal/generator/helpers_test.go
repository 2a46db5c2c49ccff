package generator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubHasher struct{ err error }

func (h stubHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "digest:" + plain, nil
}

type stubText struct{ n int }

func (s *stubText) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s %d", prefix, s.n)
}

func (s *stubText) Name() string      { return s.next("Name") }
func (s *stubText) Phrase() string    { return s.next("phrase") }
func (s *stubText) Paragraph() string { return s.next("paragraph") }
func (s *stubText) Token() string     { s.n++; return fmt.Sprintf("tok%d", s.n) }

// scriptedSampler replays fixed draws and fails the test when it runs dry.
type scriptedSampler struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptedSampler) Intn(n int) int {
	require.NotEmpty(s.t, s.ints, "scripted sampler ran out of ints")
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, v, n)
	return v
}

func (s *scriptedSampler) Float64() float64 {
	require.NotEmpty(s.t, s.floats, "scripted sampler ran out of floats")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

var fixedNow = time.Date(2024, time.November, 1, 9, 0, 0, 0, time.UTC)

func singleClassConfig() Config {
	cfg := DefaultConfig()
	cfg.Departments = []string{"CSE"}
	cfg.Years = []int{1}
	cfg.ClassesPerYearPerDept = 1
	cfg.StudentsPerClass = 2
	return cfg
}

func newTestGenerator(t *testing.T, cfg Config, seed int64) *Generator {
	t.Helper()
	g, err := New(cfg, Dependencies{
		IDs:     UUIDAllocator{},
		Sampler: NewRandSampler(seed),
		Text:    NewFakerText(seed),
		Hasher:  stubHasher{},
		Now:     func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return g
}
