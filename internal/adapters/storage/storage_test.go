package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func newS3Server(t *testing.T, status int, captured *capturedRequest, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		body, _ := io.ReadAll(r.Body)
		*captured = capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		}
		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>InternalError</Code><Message>boom</Message></Error>`)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestS3(t *testing.T, endpoint string) domain.ObjectStorage {
	t.Helper()
	st, err := NewObjectStorage(Config{
		Provider: "s3",
		S3: S3Config{
			Region:          "us-east-1",
			AccessKeyID:     "test",
			SecretAccessKey: "test",
			Endpoint:        endpoint,
			UsePathStyle:    true,
		},
	}, testLogger)
	require.NoError(t, err)
	return st
}

func TestS3Storage_Put(t *testing.T) {
	var captured capturedRequest
	var calls int
	srv := newS3Server(t, http.StatusOK, &captured, &calls)
	st := newTestS3(t, srv.URL)

	url, err := st.Put(context.Background(), "event-images", "abc-banner.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/event-images/abc-banner.png", url)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPut, captured.method)
	assert.Equal(t, "/event-images/abc-banner.png", captured.path)
	assert.Equal(t, "image/png", captured.contentType)
	assert.Contains(t, string(captured.body), "png-bytes")
}

func TestS3Storage_PutFailureIsNotRetried(t *testing.T) {
	var captured capturedRequest
	var calls int
	srv := newS3Server(t, http.StatusInternalServerError, &captured, &calls)
	st := newTestS3(t, srv.URL)

	url, err := st.Put(context.Background(), "event-images", "k.png", []byte("x"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUploadFailed))
	assert.Equal(t, "", url)
	assert.Equal(t, 1, calls)
}

func TestS3Storage_ObjectURL(t *testing.T) {
	tests := []struct {
		name   string
		config S3Config
		key    string
		want   string
	}{
		{
			name:   "aws virtual hosted",
			config: S3Config{Region: "sa-east-1"},
			key:    "id-photo.jpg",
			want:   "https://imgs.s3.sa-east-1.amazonaws.com/id-photo.jpg",
		},
		{
			name:   "public base url",
			config: S3Config{Region: "us-east-1", PublicBaseURL: "https://cdn.example.com/"},
			key:    "id-my photo.jpg",
			want:   "https://cdn.example.com/id-my%20photo.jpg",
		},
		{
			name:   "custom endpoint path style",
			config: S3Config{Endpoint: "http://localhost:9000", UsePathStyle: true},
			key:    "a/b.png",
			want:   "http://localhost:9000/imgs/a/b.png",
		},
		{
			name:   "custom endpoint virtual hosted",
			config: S3Config{Endpoint: "https://storage.example.com"},
			key:    "b.png",
			want:   "https://imgs.storage.example.com/b.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &s3Storage{config: tt.config}
			assert.Equal(t, tt.want, s.objectURL("imgs", tt.key))
		})
	}
}

func TestNoopStorage(t *testing.T) {
	for _, provider := range []string{"noop", "gcs"} {
		st, err := NewObjectStorage(Config{Provider: provider}, testLogger)
		require.NoError(t, err)
		_, err = st.Put(context.Background(), "b", "k", []byte("x"), "")
		assert.ErrorIs(t, err, domain.ErrStorageDisabled, provider)
	}
}

type stubStorage struct {
	err error
}

func (s stubStorage) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://x/" + key, nil
}

func TestInstrumented(t *testing.T) {
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "uploads_total"}, []string{"result"})

	ok := Instrumented(stubStorage{}, uploads)
	url, err := ok.Put(context.Background(), "b", "k", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "https://x/k", url)

	failing := Instrumented(stubStorage{err: domain.ErrUploadFailed}, uploads)
	_, err = failing.Put(context.Background(), "b", "k", nil, "")
	require.ErrorIs(t, err, domain.ErrUploadFailed)
	_, _ = failing.Put(context.Background(), "b", "k", nil, "")

	assert.Equal(t, float64(1), testutil.ToFloat64(uploads.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(uploads.WithLabelValues("failure")))
}
