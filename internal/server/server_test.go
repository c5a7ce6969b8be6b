package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/banks"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/config"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

// ServerTestSuite проверяет HTTP маршруты целиком
type ServerTestSuite struct {
	suite.Suite
	handler http.Handler
}

func (s *ServerTestSuite) SetupTest() {
	cfg, err := config.LoadConfig()
	s.Require().NoError(err)
	cfg.RateLimitRPS = 0

	registry := tools.Registry(cfg, banks.DefaultRates(), noop.NewTracerProvider().Tracer("test"))
	s.handler = New(cfg, registry, zerolog.Nop()).Handler()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
	s.NotEmpty(rec.Header().Get(TraceIDHeader))
}

func (s *ServerTestSuite) TestListTools() {
	rec := s.do(http.MethodGet, "/tools", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), tools.ToolVehicleLoanSchedule)
}

func (s *ServerTestSuite) TestCallSchedule() {
	body := `{"vehicle_price":65000000,"down_payment":15000000,"term_months":60,"annual_reinforcement":10000000,"bank":"BancoITAU"}`
	rec := s.do(http.MethodPost, "/tools/vehicle_loan_schedule", body)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Tool string                 `json:"tool"`
		Data tools.ScheduleResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(tools.ToolVehicleLoanSchedule, resp.Tool)
	s.Equal("BancoITAU", resp.Data.Bank)
	s.Len(resp.Data.Result.Schedule, 60)
}

func (s *ServerTestSuite) TestCallBankRatesWithoutBody() {
	rec := s.do(http.MethodPost, "/tools/bank_rates", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "BancoCONTINENTAL")
}

func (s *ServerTestSuite) TestErrors() {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{name: "unknown tool", path: "/tools/mortgage", body: `{}`, status: http.StatusNotFound, code: CodeUnknownTool},
		{name: "malformed json", path: "/tools/vehicle_loan_schedule", body: `{"vehicle_price":`, status: http.StatusBadRequest, code: CodeInvalidRequest},
		{name: "validation", path: "/tools/vehicle_loan_schedule", body: `{"vehicle_price":1000,"down_payment":2000,"term_months":12}`, status: http.StatusBadRequest, code: CodeInvalidRequest},
		{name: "unknown bank", path: "/tools/vehicle_loan_schedule", body: `{"vehicle_price":1000000,"term_months":12,"bank":"BancoX"}`, status: http.StatusNotFound, code: CodeUnknownBank},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPost, tt.path, tt.body)
			s.Equal(tt.status, rec.Code)

			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.code, resp.Code)
			s.NotEmpty(resp.TraceID)
		})
	}
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/health", "")
	rec := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "http_requests_total")
}

func TestRateLimiter(t *testing.T) {
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1

	handler := New(cfg, map[string]tools.ToolHandler{}, zerolog.Nop()).Handler()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK {
		t.Errorf("first request status = %d, want 200", codes[0])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", codes[2])
	}
}

func TestRateLimiter_IgnoresForwardedFor(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1

	srv := New(cfg, map[string]tools.ToolHandler{}, zerolog.Nop())

	limited := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.%d.%d", i/256, i%256))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.GreaterOrEqual(t, limited, 48)
	assert.Equal(t, 1, srv.limiter.size())
}

func TestLimiterStore_Evict(t *testing.T) {
	store := newLimiterStore(1, 1, time.Minute)
	now := time.Now()

	store.get("192.0.2.1", now.Add(-2*time.Minute))
	store.get("192.0.2.2", now.Add(-10*time.Second))
	require.Equal(t, 2, store.size())

	assert.Equal(t, 1, store.evict(now))
	assert.Equal(t, 1, store.size())

	// повторный запрос продлевает запись
	store.get("192.0.2.2", now.Add(2*time.Minute))
	assert.Equal(t, 0, store.evict(now.Add(150*time.Second)))
}

func TestLimiterStore_CleanupStopsOnCancel(t *testing.T) {
	store := newLimiterStore(1, 1, time.Millisecond)
	store.get("192.0.2.1", time.Now().Add(-time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.cleanup(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return store.size() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop after cancel")
	}
}
