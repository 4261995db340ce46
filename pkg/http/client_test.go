package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name" xml:"name"`
}

type apiError struct {
	Message string `json:"message"`
}

func TestGet_EscapesAndMergesQueryParams(t *testing.T) {
	var received url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search.json", r.URL.Path)
		received = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"New Delhi"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/v1/", ClientOptions{
		DefaultQueryParams: map[string]string{"key": "secret", "lang": "en"},
	})

	resp, errResp, status, err := client.Get(context.Background(), "search.json",
		map[string]string{"q": "New Delhi&x=1", "lang": "pt"}, &payload{}, nil)

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "New Delhi", resp.(*payload).Name)
	assert.Equal(t, "New Delhi&x=1", received.Get("q"))
	assert.Equal(t, "secret", received.Get("key"))
	assert.Equal(t, "pt", received.Get("lang"))
}

func TestGet_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"No matching location found."}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	resp, errResp, status, err := client.Get(context.Background(), "/forecast.json", nil, &payload{}, &apiError{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Nil(t, resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "No matching location found.", errResp.(*apiError).Message)
}

func TestGet_UndecodableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, _, err := client.Get(context.Background(), "/", nil, &payload{}, &apiError{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Nil(t, errResp)
	assert.Equal(t, "<html>oops</html>", string(statusErr.Body))
}

func TestGet_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Get(context.Background(), "/", nil, &payload{}, nil)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", decodeErr.ContentType)
}

func TestGet_XMLWithCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=ISO-8859-1")
		_, _ = w.Write([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><payload><name>S\xe3o Paulo</name></payload>"))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	resp, _, _, err := client.Get(context.Background(), "/", nil, &payload{}, nil)

	require.NoError(t, err)
	assert.Equal(t, "São Paulo", resp.(*payload).Name)
}

func TestGet_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Get(ctx, "/", nil, &payload{}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Zero(t, status)
}

func TestRequest_BuilderSendsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{DefaultQueryParams: map[string]string{"key": "secret"}})
	resp, _, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("forecast.json").
		WithQueryParams(map[string]string{"q": "London"}).
		WithSuccessResp(&payload{}).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp.(*payload).Name)
}

func TestGet_DoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Get(context.Background(), "/", nil, &payload{}, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusFound, status)
}

func TestRequest_RequiresPath(t *testing.T) {
	client := NewHttpClient("http://localhost", ClientOptions{})
	_, _, _, err := client.Request().WithPath("").Execute()
	assert.EqualError(t, err, "path is required")
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://api.weatherapi.com/v1/forecast.json?key=secret&q=London")
	require.NoError(t, err)

	redacted := redactURL(u)

	assert.NotContains(t, redacted, "secret")
	assert.Contains(t, redacted, "q=London")
	assert.Equal(t, "key=secret&q=London", u.RawQuery)
}
