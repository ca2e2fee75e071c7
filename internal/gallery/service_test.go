package gallery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picshelf/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoad_Success(t *testing.T) {
	var gotPage, gotLimit string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"0","author":"Alejandro Escamilla","width":5000,"height":3333,"url":"https://unsplash.com/photos/yC-Yzbqy7PY","download_url":"https://picsum.photos/id/0/5000/3333"},
			{"id":"1","author":"Alejandro Escamilla","width":5000,"height":3333,"url":"https://unsplash.com/photos/LNRyGwIJr5c","download_url":"https://picsum.photos/id/1/5000/3333"}
		]`))
	}))
	defer ts.Close()

	s := NewService(ts.URL, 1, 200, testLogger())
	images, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "200", gotLimit)
	require.Len(t, images, 2)
	assert.Equal(t, "Alejandro Escamilla", images[0].Author)
	assert.Equal(t, "https://picsum.photos/id/0/5000/3333", images[0].DownloadURL)
	assert.Equal(t, 5000, images[0].Width)
}

func TestLoad_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	s := NewService(ts.URL, 1, 200, testLogger())
	images, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, images)
}

func TestLoad_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer ts.Close()

	s := NewService(ts.URL, 1, 200, testLogger())
	_, err := s.Load(context.Background())
	require.Error(t, err)
}

func TestLoad_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	s := NewService(ts.URL, 1, 200, testLogger())
	_, err := s.Load(context.Background())
	require.Error(t, err)
}

func TestLoad_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewService(ts.URL, 1, 200, testLogger())
	_, err := s.Load(ctx)
	require.Error(t, err)
}
