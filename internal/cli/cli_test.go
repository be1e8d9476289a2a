package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ingestHttp "newsdesk-service/internal/ingest/adapters/http/fiber"
	ingestDomain "newsdesk-service/internal/ingest/core/domain"
	"newsdesk-service/internal/platform/metrics"
	reportsHttp "newsdesk-service/internal/reports/adapters/http/fiber"
	"newsdesk-service/internal/reports/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReports struct{}

func (stubReports) ByDate(ctx context.Context, date string) (domain.DateReport, error) {
	return domain.DateReport{}, nil
}

func (stubReports) Timeline(ctx context.Context, topic string) ([]domain.ChannelSeries, error) {
	return nil, nil
}

func (stubReports) BestSegments(ctx context.Context, topic string) ([]domain.ChannelSegments, error) {
	return nil, nil
}

type stubCatalog struct{}

func (stubCatalog) Channels(ctx context.Context) ([]domain.Channel, error) {
	return []domain.Channel{{ID: 1, Name: "A"}}, nil
}

func (stubCatalog) Topics(ctx context.Context) ([]domain.Topic, error) {
	return nil, nil
}

func (stubCatalog) Topic(ctx context.Context, id int64) (*domain.Topic, error) {
	return &domain.Topic{ID: id, Name: "x"}, nil
}

func (stubCatalog) Segments(ctx context.Context) ([]domain.Segment, error) {
	return nil, nil
}

func (stubCatalog) Segment(ctx context.Context, id int64) (*domain.Segment, error) {
	return &domain.Segment{ID: id, Channel: "A"}, nil
}

func (stubCatalog) Audience(ctx context.Context) ([]domain.Reading, error) {
	return nil, nil
}

type stubLoader struct{}

func (stubLoader) LoadSegments(ctx context.Context, records []ingestDomain.SegmentRecord) (ingestDomain.LoadResult, error) {
	return ingestDomain.LoadResult{Family: "segments", LoadStats: ingestDomain.LoadStats{Inserted: int64(len(records))}}, nil
}

func (stubLoader) LoadAudience(ctx context.Context, raw map[string][]int64) (ingestDomain.LoadResult, error) {
	return ingestDomain.LoadResult{Family: "audience"}, nil
}

func testApp(health func(ctx context.Context) error) *fiber.App {
	m := metrics.New()
	return newApp(zerolog.Nop(), time.Second, time.Second, routes{
		reports: reportsHttp.NewReportHandler(stubReports{}, stubCatalog{}),
		loads:   ingestHttp.NewLoadHandler(stubLoader{}, m),
		metrics: m,
		health:  health,
	})
}

func TestNewApp_Routes(t *testing.T) {
	app := testApp(nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/news/api/audience/by-date/?date=2020-01-01", "", http.StatusOK},
		{http.MethodGet, "/news/api/topic/timeline/?topic=x", "", http.StatusOK},
		{http.MethodGet, "/news/api/topic/segments/?topic=x", "", http.StatusOK},
		{http.MethodGet, "/news/api/channel/", "", http.StatusOK},
		{http.MethodGet, "/news/api/topic/timeline/", "", http.StatusBadRequest},
		{http.MethodGet, "/news/api/topic/", "", http.StatusOK},
		{http.MethodGet, "/news/api/topic/3/", "", http.StatusOK},
		{http.MethodGet, "/news/api/topic/abc/", "", http.StatusBadRequest},
		{http.MethodGet, "/news/api/segment/", "", http.StatusOK},
		{http.MethodGet, "/news/api/segment/7/", "", http.StatusOK},
		{http.MethodGet, "/news/api/audience/", "", http.StatusOK},
		{http.MethodPost, "/news/api/segment/bulk", `[{"channel":"A","start_ts":1,"end_ts":2}]`, http.StatusCreated},
		{http.MethodPost, "/news/api/audience/bulk", `{"1":[1]}`, http.StatusCreated},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/news/api/unknown/", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestNewApp_HealthzReportsDatabaseFailure(t *testing.T) {
	app := testApp(func(ctx context.Context) error { return errors.New("connection refused") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unavailable"}`, string(body))
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "load"} {
		assert.True(t, names[want], "missing command %q", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestLoadCommand_MissingFileFailsBeforeConnecting(t *testing.T) {
	t.Setenv("NEWSDESK_POSTGRES_DSN", "")
	t.Setenv("POSTGRES_DSN", "")

	root := NewRootCommand()
	root.SetArgs([]string{"load", "segments", filepath.Join(t.TempDir(), "missing.jsonl")})
	root.SetOut(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.jsonl")
}

func TestMigrateCommand_RequiresDSN(t *testing.T) {
	t.Setenv("NEWSDESK_POSTGRES_DSN", "")
	t.Setenv("POSTGRES_DSN", "")

	root := NewRootCommand()
	root.SetArgs([]string{"migrate"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres dsn is not set")
}
