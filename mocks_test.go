package dircache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"
)

// mockSource is an EntrySource recording all fetches
type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchFromSource(id string, fetchReferences bool) (*Record, bool, error) {
	args := m.Called(id, fetchReferences)
	record, _ := args.Get(0).(*Record)
	return record, args.Bool(1), args.Error(2)
}

// gatedSource blocks all fetches until gate is closed
type gatedSource struct {
	gate    chan struct{}
	fetches atomic.Int64
}

func (g *gatedSource) FetchFromSource(id string, fetchReferences bool) (*Record, bool, error) {
	g.fetches.Add(1)
	<-g.gate
	return NewRecord(id), true, nil
}

// mockMetrics is a MetricsSink keeping counters values in memory
type mockMetrics struct {
	mu     sync.Mutex
	values map[Counter]int64
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{values: make(map[Counter]int64)}
}

func (m *mockMetrics) Increment(counter Counter, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[counter] += delta
}

func (m *mockMetrics) Decrement(counter Counter, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[counter] -= delta
}

func (m *mockMetrics) get(counter Counter) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[counter]
}

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
