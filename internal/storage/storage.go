package storage

import (
	"context"
	"errors"
)

// IndexKeyPrefix prefixes every stored website version. The suffix is a
// fixed-width ISO date, so lexicographic key order equals chronological order.
const IndexKeyPrefix = "index.html_"

var ErrNotFound = errors.New("entry not found")

// GenerationStats describes a single generation call.
type GenerationStats struct {
	DurationMs       int64    `json:"durationMs"`
	PromptTokens     int      `json:"promptTokens"`
	CompletionTokens int      `json:"completionTokens"`
	TotalTokens      int      `json:"totalTokens"`
	Cost             *float64 `json:"cost,omitempty"`
}

// Metadata is attached to a stored website as entry-level metadata, never
// embedded in the HTML body.
type Metadata struct {
	Model      string          `json:"model"`
	Timestamp  int64           `json:"timestamp"`
	Generation GenerationStats `json:"generation"`
}

// Entry is a stored website version.
type Entry struct {
	HTML     string
	Metadata Metadata
}

type Storage interface {
	Put(ctx context.Context, key string, html string, metadata Metadata) error
	Get(ctx context.Context, key string) (*Entry, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

// IndexKey builds the storage key for a YYYY-MM-DD date.
func IndexKey(date string) string {
	return IndexKeyPrefix + date
}

// DateFromKey is the inverse of IndexKey.
func DateFromKey(key string) string {
	if len(key) <= len(IndexKeyPrefix) {
		return ""
	}
	return key[len(IndexKeyPrefix):]
}

// LatestKey returns the lexicographically greatest key, or "" for no keys.
func LatestKey(keys []string) string {
	latest := ""
	for _, k := range keys {
		if k > latest {
			latest = k
		}
	}
	return latest
}
