package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vortex-fintech/fieldnorm/foundation/logger"
	"github.com/vortex-fintech/fieldnorm/foundation/timeutil"
)

func TestProcessorLogsMaskedValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	rec := newFakeRecorder()

	p, err := NewEmail(DefaultEmailConfig(), WithLogger(log), WithMetrics(rec))
	require.NoError(t, err)

	_, err = p.Process(Record{"email": "John.Doe@Example.com"})
	require.NoError(t, err)

	entries := logs.FilterMessage("field normalized").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "email", fields["domain"])
	require.Equal(t, "email", fields["field"])
	require.Equal(t, "J******e@Example.com", fields["before"])
	require.Equal(t, "j******e@example.com", fields["after"])

	require.Equal(t, []recordedObservation{{domain: DomainEmail, result: "clean"}}, rec.records)
	require.Equal(t, 1, rec.changed[DomainEmail])
}

func TestProcessorRecordsWarningMetrics(t *testing.T) {
	rec := newFakeRecorder()
	p, err := NewPhone(DefaultPhoneConfig(), WithMetrics(rec))
	require.NoError(t, err)

	_, err = p.Process(Record{"phone": "020 7946 0958"})
	require.NoError(t, err)
	_, err = p.Process(nil)
	require.Error(t, err)

	require.Equal(t, []recordedObservation{
		{domain: DomainPhone, result: "warned"},
		{domain: DomainPhone, result: "failed"},
	}, rec.records)
	require.Equal(t, 1, rec.warnings["phone/PHONE_NEEDS_COUNTRY"])
}

func TestProcessorObservesDurationFromClock(t *testing.T) {
	rec := newFakeRecorder()
	clock := timeutil.NewStepClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 3*time.Millisecond)
	p, err := NewName(DefaultNameConfig(), WithMetrics(rec), WithClock(clock))
	require.NoError(t, err)

	_, err = p.Process(Record{"first_name": "ada"})
	require.NoError(t, err)
	require.Equal(t, []time.Duration{3 * time.Millisecond}, rec.durations)
}

func TestOptionsIgnoreNil(t *testing.T) {
	o := buildOptions([]Option{nil, WithLogger(nil), WithMetrics(nil), WithClock(nil)})
	require.NotNil(t, o.log)
	require.NotNil(t, o.metrics)
	require.IsType(t, timeutil.UTCClock{}, o.clock)
}
