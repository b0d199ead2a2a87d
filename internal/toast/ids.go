package toast

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out IDs for toasts added without one.
type IDGenerator interface {
	NextID() string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

// NextID implements IDGenerator.
func (f IDFunc) NextID() string { return f() }

// CounterIDs returns a generator producing "1", "2", "3", ...
func CounterIDs() IDGenerator {
	var n uint64
	return IDFunc(func() string {
		n++
		return strconv.FormatUint(n, 10)
	})
}

// UUIDIDs returns a generator producing random UUIDs.
func UUIDIDs() IDGenerator {
	return IDFunc(uuid.NewString)
}

// ParseIDScheme maps a config value ("counter" or "uuid") to a generator.
func ParseIDScheme(s string) (IDGenerator, bool) {
	switch s {
	case "", "counter":
		return CounterIDs(), true
	case "uuid":
		return UUIDIDs(), true
	}
	return nil, false
}
