package storage

import (
	"context"
	"encoding/json"
	"log"
)

// LoadList decodes the JSON sequence stored at key. It fails soft: an absent
// key, a driver read problem or a value that does not parse as an array of T
// all come back as an empty slice. Corruption is logged and swallowed so a bad
// record can never take a view down.
func LoadList[T any](ctx context.Context, s Store, key string) []T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		log.Printf("[STORAGE] [ERROR] read %q failed: %v", key, err)
		return nil
	}
	if !ok || len(raw) == 0 {
		return nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("[STORAGE] [ERROR] value at %q is not a valid list, treating as empty: %v", key, err)
		return nil
	}
	return list
}

// SaveList serializes the full sequence and overwrites the key in one write.
func SaveList[T any](ctx context.Context, s Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
