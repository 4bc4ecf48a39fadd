package redis

import "fmt"

// KeyPrefixVideo is the prefix for per-video bookmark records.
const KeyPrefixVideo = "clipkeeper:video:"

// RecordKey returns the Redis key for a video's bookmark record.
func RecordKey(videoKey string) string {
	return KeyPrefixVideo + videoKey
}

// ExtractVideoKey recovers the video key from a record key.
func ExtractVideoKey(key string) (string, error) {
	if len(key) <= len(KeyPrefixVideo) || key[:len(KeyPrefixVideo)] != KeyPrefixVideo {
		return "", fmt.Errorf("invalid record key: %s", key)
	}
	return key[len(KeyPrefixVideo):], nil
}
