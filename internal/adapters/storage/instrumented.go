package storage

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"eventhub/internal/domain"
)

type instrumentedStorage struct {
	next    domain.ObjectStorage
	uploads *prometheus.CounterVec
}

// Instrumented counts uploads made through next by result ("success" or "failure").
func Instrumented(next domain.ObjectStorage, uploads *prometheus.CounterVec) domain.ObjectStorage {
	return &instrumentedStorage{next: next, uploads: uploads}
}

func (s *instrumentedStorage) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	url, err := s.next.Put(ctx, bucket, key, data, contentType)
	result := "success"
	if err != nil {
		result = "failure"
	}
	s.uploads.WithLabelValues(result).Inc()
	return url, err
}
