package logging

import "sync"

// MockLogger records log calls for assertions in tests.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
}

// MockEntry is one recorded log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
}

// NewMockLogger creates an empty recording logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: fields})
}

// Debug records a debug-level call
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level call
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level call
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level call
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError returns the same recorder; the error is not tracked separately
func (m *MockLogger) WithError(err error) Logger { return m }

// WithField returns the same recorder; the field is not tracked separately
func (m *MockLogger) WithField(key string, value interface{}) Logger { return m }

// Messages returns all recorded messages in order.
func (m *MockLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.Message
	}
	return out
}
