package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// unmarshalColumn decodes a nullable JSONB column into dst, leaving dst
// untouched for NULL or empty values. Entity Normalize methods fill in the
// blanks afterwards.
func unmarshalColumn(src sql.NullString, dst any) error {
	if !src.Valid || src.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(src.String), dst); err != nil {
		return fmt.Errorf("failed to parse column: %w", err)
	}
	return nil
}

// marshalColumn encodes v for a JSONB column.
func marshalColumn(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal column: %w", err)
	}
	return b, nil
}
