package receipt

import "time"

// NewNumber builds a receipt number from a timestamp, e.g.
// RCP-20240101-120000. The number doubles as the human-readable code
// printed under the barcode strip and is the downstream lookup key.
func NewNumber(t time.Time) string {
	return "RCP-" + t.Format("20060102-150405")
}
