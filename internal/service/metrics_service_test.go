package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

func TestMetricsServiceRecords(t *testing.T) {
	m := NewMetricsService("")

	m.RecordInserted("staff", 4)
	m.RecordInserted("staff", 0)
	m.RecordEvents(map[models.EventStatus]int{models.EventStatusApproved: 7, models.EventStatusPending: 2})
	m.RecordSkipped(1)
	m.ObserveStage("generate", 20*time.Millisecond)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.inserted.WithLabelValues("staff")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.events.WithLabelValues("Approved")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("Pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.skipped))
	assert.Equal(t, 1, testutil.CollectAndCount(m.stageDuration))
	assert.False(t, m.PushEnabled())
	assert.NoError(t, m.Push(context.Background()))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordInserted("staff", 1)
	m.RecordEvents(nil)
	m.RecordSkipped(3)
	m.ObserveStage("wipe", time.Second)
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.Push(context.Background()))
}

func TestMetricsServicePush(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewMetricsService(server.URL)
	m.RecordInserted("events", 3)

	require.NoError(t, m.Push(context.Background()))
	assert.True(t, strings.HasSuffix(path, "/job/"+metricsJob), path)
}
