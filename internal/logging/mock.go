package logging

import "sync"

// MockEntry is one captured log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// MockLogger captures log calls for assertions in tests.
type MockLogger struct {
	mu      sync.Mutex
	entries []MockEntry
	context []Field
	err     error
}

// NewMockLogger creates an empty mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Entries returns a copy of the captured entries.
func (m *MockLogger) Entries() []MockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(append([]Field{}, m.context...), fields...)
	m.entries = append(m.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError returns a mock sharing the entry sink with the error attached.
func (m *MockLogger) WithError(err error) Logger {
	return &sharedMock{parent: m, context: m.context, err: err}
}

// WithField returns a mock sharing the entry sink with the field attached.
func (m *MockLogger) WithField(key string, value any) Logger {
	return &sharedMock{parent: m, context: append(append([]Field{}, m.context...), F(key, value))}
}

// sharedMock forwards records to the root mock so tests can assert on a
// single sink regardless of With* chaining.
type sharedMock struct {
	parent  *MockLogger
	context []Field
	err     error
}

func (s *sharedMock) record(level, msg string, fields []Field) {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	all := append(append([]Field{}, s.context...), fields...)
	s.parent.entries = append(s.parent.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: s.err})
}

func (s *sharedMock) Debug(msg string, fields ...Field) { s.record("debug", msg, fields) }
func (s *sharedMock) Info(msg string, fields ...Field)  { s.record("info", msg, fields) }
func (s *sharedMock) Warn(msg string, fields ...Field)  { s.record("warn", msg, fields) }
func (s *sharedMock) Error(msg string, fields ...Field) { s.record("error", msg, fields) }

func (s *sharedMock) WithError(err error) Logger {
	return &sharedMock{parent: s.parent, context: s.context, err: err}
}

func (s *sharedMock) WithField(key string, value any) Logger {
	return &sharedMock{parent: s.parent, context: append(append([]Field{}, s.context...), F(key, value)), err: s.err}
}
