package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx/types"
)

// JSON stores V in a jsonb column through types.JSONText.
type JSON[V any] struct {
	V V
}

func NewJSON[V any](v V) JSON[V] {
	return JSON[V]{V: v}
}

func (j JSON[V]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}

	return types.JSONText(b).Value()
}

func (j *JSON[V]) Scan(src any) error {
	if src == nil {
		var zero V
		j.V = zero

		return nil
	}

	var raw types.JSONText
	if err := raw.Scan(src); err != nil {
		return fmt.Errorf("cannot scan %T into json column: %w", src, err)
	}

	if err := raw.Unmarshal(&j.V); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}

	return nil
}

func (j JSON[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSON[V]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &j.V)
}
