// Package journal records computed hedge scenarios so they can be reviewed
// later. The calculator itself never touches a journal; callers record
// what they computed.
package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/hedger/hedge"
)

// ScenarioRecord is one computed scenario with the inputs that produced it.
type ScenarioRecord struct {
	ID     string
	Time   time.Time
	Pair   string
	Inputs hedge.Inputs
	Result hedge.Result
}

type Journal interface {
	RecordScenario(ScenarioRecord) error
	Close() error
}

// Nop discards every record.
type Nop struct{}

func (Nop) RecordScenario(ScenarioRecord) error { return nil }
func (Nop) Close() error { return nil }

// Open returns the journal named by kind: "none", "csv" or "sqlite".
func Open(kind, path string) (Journal, error) {
	switch kind {
	case "", "none":
		return Nop{}, nil
	case "csv":
		return NewCSV(path)
	case "sqlite":
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown journal type %q", kind)
	}
}
