package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidationFailed},
		{http.StatusUnprocessableEntity, ErrValidationFailed},
		{http.StatusInternalServerError, ErrServerRejected},
		{http.StatusBadGateway, ErrServerRejected},
		{http.StatusTeapot, ErrServerRejected},
	}

	for _, tt := range tests {
		err := classifyStatus(tt.status, "msg")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestClassifyTransport(t *testing.T) {
	assert.ErrorIs(t, classifyTransport(context.DeadlineExceeded), ErrTimeout)
	assert.ErrorIs(t, classifyTransport(&timeoutErr{}), ErrTimeout)
	assert.ErrorIs(t, classifyTransport(errors.New("connection refused")), ErrNetworkUnavailable)
}

func TestAPIErrorUnwrap(t *testing.T) {
	err := classifyStatus(http.StatusNotFound, "partner not found")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "partner not found", apiErr.Message)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "partner not found")
}

// timeoutErr, net.Error'ın Timeout() kontratını taklit eder.
type timeoutErr struct{}

func (*timeoutErr) Error() string   { return "i/o timeout" }
func (*timeoutErr) Timeout() bool   { return true }
func (*timeoutErr) Temporary() bool { return true }

var _ interface {
	error
	Timeout() bool
} = (*timeoutErr)(nil)

func TestTimeoutAgainstSlowServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow timeout test")
	}

	// Client timeout'undan yavaş cevap veren server: Timeout hatası beklenir.
	// Test gerçek 5 saniyeyi beklemesin diye kısa timeout'lu client kurulur.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.readHC = &http.Client{Timeout: 50 * time.Millisecond}

	err := c.Get(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}
