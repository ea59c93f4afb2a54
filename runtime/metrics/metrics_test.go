package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNew_NilRegisterer(t *testing.T) {
	_, err := New(nil, "fieldnorm", "normalize")
	require.Error(t, err)
}

func TestPromRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	pr, err := New(reg, "fieldnorm", "normalize")
	require.NoError(t, err)

	pr.ObserveRecord("email", ResultClean, time.Millisecond)
	pr.ObserveRecord("email", ResultWarned, time.Millisecond)
	pr.ObserveRecord("email", ResultWarned, time.Millisecond)
	pr.AddWarnings("email", []string{"INVALID_EMAIL", "EMAIL_EXTRACTED", "INVALID_EMAIL"})
	pr.AddChangedFields("email", 3)
	pr.AddChangedFields("email", 0)

	require.Equal(t, 1.0, testutil.ToFloat64(pr.records.WithLabelValues("email", ResultClean)))
	require.Equal(t, 2.0, testutil.ToFloat64(pr.records.WithLabelValues("email", ResultWarned)))
	require.Equal(t, 2.0, testutil.ToFloat64(pr.warnings.WithLabelValues("email", "INVALID_EMAIL")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.warnings.WithLabelValues("email", "EMAIL_EXTRACTED")))
	require.Equal(t, 3.0, testutil.ToFloat64(pr.changed.WithLabelValues("email")))
	require.Equal(t, 1, testutil.CollectAndCount(pr.duration))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg, "fieldnorm", "normalize")
	require.NoError(t, err)
	second, err := New(reg, "fieldnorm", "normalize")
	require.NoError(t, err)

	first.AddChangedFields("phone", 1)
	second.AddChangedFields("phone", 1)

	require.Equal(t, 2.0, testutil.ToFloat64(second.changed.WithLabelValues("phone")))
}

func TestNop(t *testing.T) {
	r := Nop()
	r.ObserveRecord("name", ResultFailed, 0)
	r.AddWarnings("name", []string{"MISSING_NAME"})
	r.AddChangedFields("name", 2)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	pr, err := New(reg, "fieldnorm", "normalize")
	require.NoError(t, err)
	pr.ObserveRecord("whitespace", ResultClean, time.Microsecond)

	path := filepath.Join(t.TempDir(), "fieldnorm.prom")
	require.NoError(t, WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), `fieldnorm_normalize_records_total{domain="whitespace",result="clean"} 1`))

	require.Error(t, WriteTextfile("", reg))
	require.Error(t, WriteTextfile(path, nil))
}
