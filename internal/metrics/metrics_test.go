package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_StoreGaugesFollowStore(t *testing.T) {
	stores, err := db.Open(db.BackendMemory, "", nil)
	require.NoError(t, err)
	m := New(stores, zerolog.Nop())

	_, err = stores.Reservations.Delete(context.Background(), 1)
	require.NoError(t, err)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Contains(t, string(body), "booking_reservations 2")
	assert.Contains(t, string(body), "booking_customers 3")
}

func TestMetrics_Observe(t *testing.T) {
	stores, _ := db.Open(db.BackendMemory, "", nil)
	m := New(stores, zerolog.Nop())

	m.Observe("GET", "/api/reservations", 200, 3*time.Millisecond)
	m.Observe("GET", "/api/reservations", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/reservations", "200")))
}
