package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIPExtractor(t *testing.T) {
	tests := []struct {
		name           string
		trustedProxies []string
		remoteAddr     string
		forwardedFor   string
		want           string
	}{
		{
			name:         "direct peer ignores forwarding headers",
			remoteAddr:   "198.51.100.9:41234",
			forwardedFor: "203.0.113.5",
			want:         "198.51.100.9",
		},
		{
			name:           "trusted proxy forwards client address",
			trustedProxies: []string{"10.0.0.0/8"},
			remoteAddr:     "10.1.2.3:41234",
			forwardedFor:   "203.0.113.5",
			want:           "203.0.113.5",
		},
		{
			name:           "untrusted peer cannot forward",
			trustedProxies: []string{"10.0.0.0/8"},
			remoteAddr:     "198.51.100.9:41234",
			forwardedFor:   "203.0.113.5",
			want:           "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extract, err := newIPExtractor(tt.trustedProxies)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set(echo.HeaderXForwardedFor, tt.forwardedFor)
			req.Header.Set(echo.HeaderXRealIP, tt.forwardedFor)

			assert.Equal(t, tt.want, extract(req))
		})
	}
}

func TestNewIPExtractor_InvalidCIDR(t *testing.T) {
	_, err := newIPExtractor([]string{"not-a-cidr"})
	assert.ErrorContains(t, err, "invalid trusted proxy")
}
