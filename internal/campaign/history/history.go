// Package history models the append-only boost audit log embedded in each
// participant record. The log is stored as a JSONB column; parsing is
// deliberately lenient so a malformed blob degrades to an empty log instead
// of failing the request.
package history

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entry types.
const (
	TypeReferral = "referral"
	TypeShare    = "share"
)

// Entry is a single boost event. ReferredID is set for referral boosts,
// Platform for share boosts.
type Entry struct {
	Type            string     `json:"type"`
	Value           int        `json:"value"`
	OrdersIncrement int        `json:"orders_increment"`
	CreatedAt       time.Time  `json:"created_at"`
	ReferredID      *uuid.UUID `json:"referred_id,omitempty"`
	Platform        *string    `json:"platform,omitempty"`
}

// Entries is a chronological boost log. Insertion order is append order.
type Entries []Entry

// Append returns a new log with entry appended; the receiver is not mutated.
func (e Entries) Append(entry Entry) Entries {
	out := make(Entries, len(e), len(e)+1)
	copy(out, e)
	return append(out, entry)
}

// Parse normalizes a raw history value into Entries. Accepts an Entries
// value, JSON bytes or string, or nil; anything malformed yields an empty
// log. It never returns an error.
func Parse(raw interface{}) Entries {
	switch v := raw.(type) {
	case nil:
		return Entries{}
	case Entries:
		if v == nil {
			return Entries{}
		}
		return v
	case []Entry:
		return Entries(v)
	case []byte:
		return parseJSON(v)
	case string:
		return parseJSON([]byte(v))
	default:
		return Entries{}
	}
}

func parseJSON(data []byte) Entries {
	if len(data) == 0 {
		return Entries{}
	}
	var entries Entries
	if err := json.Unmarshal(data, &entries); err != nil {
		return Entries{}
	}
	if entries == nil {
		return Entries{}
	}
	return entries
}

// Value implements driver.Valuer so Entries can be written to a JSONB column.
func (e Entries) Value() (driver.Value, error) {
	if e == nil {
		return json.Marshal(Entries{})
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner. A malformed column value scans as an empty
// log rather than failing the read.
func (e *Entries) Scan(value interface{}) error {
	if value == nil {
		*e = Entries{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*e = parseJSON(v)
	case string:
		*e = parseJSON([]byte(v))
	default:
		return errors.New("incompatible type for boost history")
	}
	return nil
}
