package gatelog

import (
	"time"

	"github.com/trickstertwo/gatelog/internal/json"
)

// TimestampLayout renders record timestamps as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is the immutable unit handed to the active Adapter.
type Record struct {
	Level     Level   `json:"level"`
	Message   string  `json:"message"`
	Extras    []Extra `json:"extras"`
	Timestamp string  `json:"timestamp"`
}

func formatTimestamp(at time.Time) string { return at.UTC().Format(TimestampLayout) }

// ExtraKind tags which variant an Extra holds.
type ExtraKind uint8

const (
	ExtraText ExtraKind = iota + 1
	ExtraNull
	ExtraUndefined
)

// Extra is one serialized extra value: text, null or undefined.
type Extra struct {
	Kind ExtraKind
	Text string
}

// TextExtra wraps serialized text as an Extra.
func TextExtra(s string) Extra { return Extra{Kind: ExtraText, Text: s} }

// Null and undefined extras carry no text.
var (
	NullExtra      = Extra{Kind: ExtraNull}
	UndefinedExtra = Extra{Kind: ExtraUndefined}
)

func (e Extra) String() string {
	switch e.Kind {
	case ExtraText:
		return e.Text
	case ExtraNull:
		return "null"
	default:
		return "undefined"
	}
}

// MarshalJSON encodes text as a JSON string; null and undefined both become null.
func (e Extra) MarshalJSON() ([]byte, error) {
	if e.Kind != ExtraText {
		return []byte("null"), nil
	}
	return json.Marshal(e.Text)
}

func (e *Extra) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*e = NullExtra
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*e = TextExtra(s)
	return nil
}

type undefined struct{}

// Undefined marks an explicitly missing value; a nil interface means null.
var Undefined any = undefined{}
