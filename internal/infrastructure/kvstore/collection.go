package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/quadro-app/quadro/internal/domain/entity"
)

// readAll decodes the sequence stored under key. A missing key is an
// empty collection; undecodable content is ErrCorruptState.
func readAll[T any](s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", entity.ErrCorruptState, key, err)
	}
	return records, nil
}

// writeAll replaces the sequence stored under key.
func writeAll[T any](s Store, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
