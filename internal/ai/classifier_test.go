package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClassifier_Classify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://res.example.com/TMP/file.pdf", req.URL)

		_ = json.NewEncoder(w).Encode(classifyResponse{
			Results: []Report{{
				DocType:      "Incident Report",
				OrgType:      "Safety & Security",
				ShortSummary: "Signal failure near depot.",
				Summary:      []string{"Signal failed at 06:12.", "No injuries reported."},
			}},
		})
	}))
	defer srv.Close()

	c, err := NewHTTPClassifier(&Config{Endpoint: srv.URL, APIKey: "secret", Timeout: time.Second})
	require.NoError(t, err)

	report, err := c.Classify(context.Background(), "https://res.example.com/TMP/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Incident Report", report.DocType)
	assert.Equal(t, "Safety & Security", report.OrgType)
	assert.Len(t, report.Summary, 2)
}

func TestHTTPClassifier_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewHTTPClassifier(&Config{Endpoint: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Classify(context.Background(), "https://res.example.com/TMP/file.pdf")
	assert.ErrorContains(t, err, "status 502")
}

func TestHTTPClassifier_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(classifyResponse{})
	}))
	defer srv.Close()

	c, err := NewHTTPClassifier(&Config{Endpoint: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Classify(context.Background(), "https://res.example.com/TMP/file.pdf")
	assert.ErrorContains(t, err, "no results")
}

func TestHTTPClassifier_Unreachable(t *testing.T) {
	c, err := NewHTTPClassifier(&Config{Endpoint: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Classify(context.Background(), "https://res.example.com/TMP/file.pdf")
	assert.Error(t, err)
}

func TestNewHTTPClassifier_RequiresEndpoint(t *testing.T) {
	_, err := NewHTTPClassifier(&Config{})
	assert.Error(t, err)
}
