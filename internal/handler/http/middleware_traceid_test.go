package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceHandler(buf *bytes.Buffer) *Handler {
	if buf == nil {
		return &Handler{logger: logger.Nop()}
	}
	return &Handler{logger: logger.New(buf, "test")}
}

func serveWithTraceID(h *Handler, incoming string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, productsPath, nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestWithTraceID_Header(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
		wantUUID bool
	}{
		{name: "incoming id reused", incoming: "catalog-trace-1", wantSame: true},
		{name: "incoming uuid reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true, wantUUID: true},
		{name: "missing id generated", wantUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := serveWithTraceID(newTraceHandler(nil), tt.incoming, next)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.True(t, called)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTraceHandler(nil)
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := serveWithTraceID(h, "", okHandler).Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	serveWithTraceID(newTraceHandler(&buf), "trace-in-logs", next)

	assert.Contains(t, buf.String(), `"trace_id":"trace-in-logs"`)
	assert.Contains(t, buf.String(), "inside handler")
}

func TestWithTraceID_ParentLoggerUntouched(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)

	serveWithTraceID(h, "child-only", okHandler)
	buf.Reset()
	h.logger.Info().Msg("parent")

	assert.NotContains(t, buf.String(), "child-only")
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTraceHandler(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.NewString()
			rec := serveWithTraceID(h, id, okHandler)
			assert.Equal(t, id, rec.Header().Get(traceIDHeader))
		}()
	}
	wg.Wait()
}
