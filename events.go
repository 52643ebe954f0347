package stockroom

// EventSink receives one line per mutating operation (add, remove, restock,
// sell, expire). The core only needs this "record event" capability; the
// caller decides where the lines go (a log file, stderr, nowhere).
type EventSink func(format string, args ...any)

// DiscardEvents is an EventSink that drops everything. It is the default
// when no sink is injected, and keeps tests free of file side effects.
func DiscardEvents(format string, args ...any) {}
