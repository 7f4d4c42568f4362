package session

import (
	"encoding/json"
	"fmt"
)

// Mark is the tri-state annotation a player can place on a law row,
// a round's card slot, or a digit cell.
type Mark uint8

const (
	// MarkUnset is the default: no opinion recorded.
	MarkUnset Mark = iota
	// MarkExcluded records "this row/value is ruled out".
	MarkExcluded
	// MarkIncluded records "this row/value holds".
	MarkIncluded
)

// Next advances the mark through the primary toggle cycle:
// unset → excluded → included → unset.
func (m Mark) Next() Mark {
	switch m {
	case MarkUnset:
		return MarkExcluded
	case MarkExcluded:
		return MarkIncluded
	default:
		return MarkUnset
	}
}

// String returns the stable textual form used in storage and output.
func (m Mark) String() string {
	switch m {
	case MarkExcluded:
		return "excluded"
	case MarkIncluded:
		return "included"
	default:
		return "unset"
	}
}

// MarshalJSON encodes the mark as its textual form.
func (m Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes the textual form. Unknown values degrade to
// MarkUnset rather than failing: stale or hand-edited stored state is
// treated as "no annotation", never as a hard error.
func (m *Mark) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("mark: %w", err)
	}
	switch s {
	case "excluded":
		*m = MarkExcluded
	case "included":
		*m = MarkIncluded
	default:
		*m = MarkUnset
	}
	return nil
}
