package crm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchGroupedDeals(t *testing.T) {
	payload := `{
		"ok": true,
		"total": 3,
		"counts": {"closedwon": 2, "166220716": 1},
		"grouped": {
			"closedwon": [
				{"id": "101", "displayId": "4821", "name": "Casamento Ana & Pedro", "stage": "closedwon", "pipeline": "82114031"},
				{"id": "102", "displayId": "4822", "name": "Formatura Direito", "stage": "closedwon", "pipeline": "84562210"}
			],
			"166220716": [
				{"id": "103", "displayId": "4901", "name": "Convenção Acme", "stage": "166220716", "pipeline": "75634529", "createdAt": "2024-04-02T08:00:00-03:00"}
			]
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/deals/grouped", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "tok-123")
	require.NoError(t, err)

	var steps []int
	got, err := client.FetchGroupedDeals(context.Background(), func(step, percent int, label string) {
		steps = append(steps, step)
		assert.GreaterOrEqual(t, percent, 0)
		assert.LessOrEqual(t, percent, 100)
		assert.NotEmpty(t, label)
	})
	require.NoError(t, err)

	assert.True(t, got.OK)
	assert.Equal(t, 3, got.Total)
	assert.Len(t, got.Grouped["closedwon"], 2)
	assert.Equal(t, "Convenção Acme", got.Grouped["166220716"][0].Name)

	// Steps arrive in non-decreasing order and end at finalizing.
	require.NotEmpty(t, steps)
	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i], steps[i-1])
	}
	assert.Equal(t, StepFinalizing, steps[len(steps)-1])
}

func TestClient_FetchGroupedDeals_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http 500", status: http.StatusInternalServerError, body: `{}`},
		{name: "http 404", status: http.StatusNotFound, body: `not here`},
		{name: "malformed payload", status: http.StatusOK, body: `{"ok": tru`},
		{name: "semantic failure", status: http.StatusOK, body: `{"ok": false, "total": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(server.URL, "")
			require.NoError(t, err)

			_, err = client.FetchGroupedDeals(context.Background(), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestClient_FetchGroupedDeals_NilProgressIsFine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true, "total": 0, "counts": {}, "grouped": {}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	require.NoError(t, err)

	got, err := client.FetchGroupedDeals(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, got.Total)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient("", "tok")
	assert.Error(t, err)
}

func TestClient_FetchGroupedDeals_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.FetchGroupedDeals(ctx, nil)
	assert.Error(t, err)
}
