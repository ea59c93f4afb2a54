package normalize

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requireWarnings(t *testing.T, want, got []string) {
	t.Helper()
	if len(want) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, want, got)
}

type recordedObservation struct {
	domain string
	result string
}

type fakeRecorder struct {
	mu        sync.Mutex
	records   []recordedObservation
	durations []time.Duration
	warnings  map[string]int
	changed   map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{warnings: map[string]int{}, changed: map[string]int{}}
}

func (f *fakeRecorder) ObserveRecord(domain, result string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, recordedObservation{domain: domain, result: result})
	f.durations = append(f.durations, d)
}

func (f *fakeRecorder) AddWarnings(domain string, codes []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range codes {
		f.warnings[domain+"/"+c]++
	}
}

func (f *fakeRecorder) AddChangedFields(domain string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changed[domain] += n
}
