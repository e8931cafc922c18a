package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	log, _ := test.NewNullLogger()
	return NewClient(endpoint, "test-token", 5*time.Second, log)
}

func TestFetchStatuses_Success(t *testing.T) {
	var gotAuth, gotFromDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1600}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	payload, err := client.FetchStatuses(context.Background(), 1000)

	require.NoError(t, err)
	assert.Equal(t, "OAuth test-token", gotAuth)
	assert.Equal(t, "1000", gotFromDate)

	object, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, object, "homeworks")
	assert.Contains(t, object, "current_date")
}

func TestFetchStatuses_ServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance window"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	payload, err := client.FetchStatuses(context.Background(), 1000)

	assert.Nil(t, payload)
	var unavailable *homework.ServiceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.StatusCode)
	assert.Equal(t, "maintenance window", unavailable.Body)
}

func TestFetchStatuses_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks": [`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	payload, err := client.FetchStatuses(context.Background(), 1000)

	assert.Nil(t, payload)
	var malformed *homework.MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestFetchStatuses_TransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	client := newTestClient(server.URL)
	payload, err := client.FetchStatuses(context.Background(), 1000)

	assert.Nil(t, payload)
	var transport *homework.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Error(t, transport.Err)
}
