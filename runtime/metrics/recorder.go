// Package metrics exposes normalization counters through Prometheus.
package metrics

import "time"

// Result label values for records_total.
const (
	ResultClean   = "clean"
	ResultWarned  = "warned"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Recorder receives one observation per processed record.
type Recorder interface {
	ObserveRecord(domain, result string, d time.Duration)
	AddWarnings(domain string, codes []string)
	AddChangedFields(domain string, n int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRecord(string, string, time.Duration) {}
func (nopRecorder) AddWarnings(string, []string)                {}
func (nopRecorder) AddChangedFields(string, int)                {}

// Nop returns a Recorder that drops everything.
func Nop() Recorder { return nopRecorder{} }
