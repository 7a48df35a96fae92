package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	GameID    ID
	SessionID ID
	RecordID  ID
)

// Constructors for domain IDs
func NewGameID() GameID       { return GameID(NewID()) }
func NewSessionID() SessionID { return SessionID(NewID()) }
func NewRecordID() RecordID   { return RecordID(NewID()) }

// String conversions for domain IDs
func (id GameID) String() string    { return ID(id).String() }
func (id SessionID) String() string { return ID(id).String() }
func (id RecordID) String() string  { return ID(id).String() }

// ParseGameID parses a string into GameID
func ParseGameID(s string) (GameID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("game ID cannot be empty")
	}
	return GameID(s), nil
}

// ParseSessionID parses a string into SessionID
func ParseSessionID(s string) (SessionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	return SessionID(s), nil
}
