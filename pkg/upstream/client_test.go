package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

type item struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type observation struct {
	method   string
	resource string
	status   int
}

type recordingObserver struct {
	calls []observation
}

func (o *recordingObserver) ObserveUpstream(method, resource string, status int, _ time.Duration) {
	o.calls = append(o.calls, observation{method, resource, status})
}

func TestResourceListForwardsTokenAndDecodesData(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/schedules", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"_id":"s1","name":"Physics"},{"_id":"s2","name":"Maths"}]}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewWithHTTPClient(srv.URL+"/api", srv.Client(), nil, obs)
	res := NewResource[item](client, "/schedules")

	items, err := res.List(WithToken(context.Background(), "tok"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Maths", items[1].Name)
	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, obs.calls, 1)
	assert.Equal(t, observation{http.MethodGet, "schedules", http.StatusOK}, obs.calls[0])
}

func TestResourceUpdateSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/schedules/a%2Fb", r.URL.EscapedPath())
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": item{ID: "a/b", Name: body["name"]}})
	}))
	defer srv.Close()

	res := NewResource[item](NewWithHTTPClient(srv.URL, srv.Client(), nil, nil), "/schedules")
	updated, err := res.Update(context.Background(), "a/b", map[string]string{"name": "Chemistry"})

	require.NoError(t, err)
	assert.Equal(t, "Chemistry", updated.Name)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status  int
		body    string
		code    string
		message string
	}{
		{http.StatusUnauthorized, `{"message":"jwt expired"}`, appErrors.ErrUnauthorized.Code, "jwt expired"},
		{http.StatusNotFound, ``, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Message},
		{http.StatusUnprocessableEntity, `{"message":"date is required"}`, appErrors.ErrValidation.Code, "date is required"},
		{http.StatusInternalServerError, `{"message":"boom"}`, appErrors.ErrUpstream.Code, "boom"},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))
		res := NewResource[item](NewWithHTTPClient(srv.URL, srv.Client(), nil, nil), "/courses")

		err := res.Delete(context.Background(), "c1")
		srv.Close()

		var appErr *appErrors.Error
		require.True(t, errors.As(err, &appErr), "status %d", tc.status)
		assert.Equal(t, tc.code, appErr.Code)
		assert.Equal(t, tc.message, appErr.Message)
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	obs := &recordingObserver{}
	res := NewResource[item](NewWithHTTPClient(url, &http.Client{Timeout: time.Second}, nil, obs), "/admissions/inquiries")
	_, err := res.List(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUpstreamUnavailable))
	require.Len(t, obs.calls, 1)
	assert.Equal(t, "admissions/inquiries", obs.calls[0].resource)
	assert.Zero(t, obs.calls[0].status)
}

func TestEmptyBodyIsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	res := NewResource[item](NewWithHTTPClient(srv.URL, srv.Client(), nil, nil), "/announcements")
	created, err := res.Create(context.Background(), map[string]string{"title": "Holiday"})

	require.NoError(t, err)
	assert.Empty(t, created.ID)
}

func TestReasonKeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Class already started"}`))
	}))
	defer srv.Close()

	res := NewResource[item](NewWithHTTPClient(srv.URL, srv.Client(), nil, nil), "/schedules")
	err := res.Delete(context.Background(), "s1")

	require.Error(t, err)
	assert.Equal(t, "Class already started", Reason(err))
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Empty(t, Reason(appErrors.ErrUpstream))
}
