// Package redis is the store adapter over the external key-value
// persistence service. One record per video key, value = JSON array of
// bookmarks, always read and written wholesale. No business logic.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/clipkeeper/clipkeeperd/internal/domain"
)

// Store handles Redis operations for bookmark records.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// FetchBookmarks retrieves and decodes the record for a video key.
// An absent record is a normal case and yields an empty list, not an error.
func (s *Store) FetchBookmarks(ctx context.Context, videoKey string) ([]domain.Bookmark, error) {
	data, err := s.client.Get(ctx, RecordKey(videoKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Bookmark{}, nil
		}
		return nil, fmt.Errorf("failed to get record for %s: %w", videoKey, err)
	}

	list, err := decodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record for %s: %w", videoKey, err)
	}
	return list, nil
}

// SaveBookmarks encodes the ordered list and writes it as the video's
// record, replacing whatever was there. Records carry no TTL; they
// persist until the next full-list write.
func (s *Store) SaveBookmarks(ctx context.Context, videoKey string, list []domain.Bookmark) error {
	data, err := encodeRecord(list)
	if err != nil {
		return fmt.Errorf("failed to encode record for %s: %w", videoKey, err)
	}

	if err := s.client.Set(ctx, RecordKey(videoKey), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save record for %s: %w", videoKey, err)
	}
	return nil
}

// ClearBookmarks sets the video's record to the empty list. The record
// itself is never deleted outright.
func (s *Store) ClearBookmarks(ctx context.Context, videoKey string) error {
	return s.SaveBookmarks(ctx, videoKey, nil)
}

// ListVideoKeys scans the record prefix and returns every tracked video key.
func (s *Store) ListVideoKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)

	iter := s.client.Scan(ctx, 0, KeyPrefixVideo+"*", 0).Iterator()
	for iter.Next(ctx) {
		videoKey, err := ExtractVideoKey(iter.Val())
		if err != nil {
			continue
		}
		keys = append(keys, videoKey)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}

	return keys, nil
}

// Ping verifies the persistence service is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// encodeRecord serializes a bookmark list. An empty or nil list encodes
// as "[]", never as null, so readers in any language see a list.
func encodeRecord(list []domain.Bookmark) ([]byte, error) {
	if list == nil {
		list = []domain.Bookmark{}
	}
	return json.Marshal(list)
}

// decodeRecord deserializes a stored record, tolerating a null body.
func decodeRecord(data []byte) ([]domain.Bookmark, error) {
	var list []domain.Bookmark
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Bookmark{}
	}
	return list, nil
}
