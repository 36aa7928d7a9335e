package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// ReflectionID is a value object representing a unique reflection identifier
// Value objects are immutable and have no identity beyond their value
type ReflectionID struct {
	value string
}

// NewReflectionID creates a new random ReflectionID
func NewReflectionID() ReflectionID {
	return ReflectionID{value: uuid.New().String()}
}

// NewReflectionIDFromString creates a ReflectionID from an existing string
func NewReflectionIDFromString(id string) (ReflectionID, error) {
	if id == "" {
		return ReflectionID{}, errors.New("reflection ID cannot be empty")
	}
	if !isValidUUID(id) {
		return ReflectionID{}, errors.New("reflection ID must be a valid UUID")
	}
	return ReflectionID{value: id}, nil
}

// String returns the string representation of the ReflectionID
func (id ReflectionID) String() string {
	return id.value
}

// Equals checks if two ReflectionIDs are equal
func (id ReflectionID) Equals(other ReflectionID) bool {
	return id.value == other.value
}

// IsZero checks if the ReflectionID is the zero value
func (id ReflectionID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ReflectionID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ReflectionID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("ReflectionID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
