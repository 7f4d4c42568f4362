package session

import "encoding/json"

// Storage keys owned by this package.
const (
	keyGame       = "game"
	keyCardsState = "cards_state"
	keyToolsState = "tools_state"
	keyCheckpoint = "checkpoint"
)

// Store is the durable key-value substrate the session persists into.
// *store.Store and testutil.MemStore both satisfy it.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, bool, error)
	Delete(key string) error
}

// saveJSON serializes v under key. A nil value deletes the key.
func saveJSON(s Store, key string, v any) error {
	if v == nil {
		return s.Delete(key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(data))
}

// loadJSON deserializes the value under key into out. Returns false
// when the key is absent. Malformed stored data is treated as absent,
// never as a hard failure: callers degrade to an empty default.
func loadJSON(s Store, key string, out any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, nil
	}
	return true, nil
}
