package aspen

import (
	"math"
	"testing"

	"github.com/phanxgames/aspen/ease"
)

func TestRecorderObserveCapturesSteps(t *testing.T) {
	m := NewManager()
	r := NewRecorder()

	s := NewSettings(Oneshot, ease.Linear)
	r.Observe(s)
	m.Num(0, 1, s, func(float64) {})

	m.Update(0.25)
	m.Update(0.25)
	m.Update(0.5)

	samples := r.Samples()
	// Two on-update steps plus the completion sample.
	if len(samples) != 3 {
		t.Fatalf("recorded %d samples, want 3", len(samples))
	}
	wantScale := []float64{0.25, 0.5, 1}
	for i, s := range samples {
		if math.Abs(s.Scale-wantScale[i]) > 1e-12 {
			t.Errorf("sample %d scale = %f, want %f", i, s.Scale, wantScale[i])
		}
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Time < samples[i-1].Time {
			t.Error("sample times not non-decreasing")
		}
	}
}

func TestRecorderObservePreservesCallbacks(t *testing.T) {
	m := NewManager()
	r := NewRecorder()
	updates, completes := 0, 0

	s := NewSettings(Oneshot, ease.Linear).
		SetOnUpdate(func(*Tween) { updates++ }).
		SetOnComplete(func(*Tween) { completes++ })
	r.Observe(s)
	m.Num(0, 1, s, func(float64) {})

	m.Update(0.5)
	m.Update(0.5)

	if updates != 1 || completes != 1 {
		t.Errorf("updates = %d completes = %d, want 1 and 1 (existing callbacks preserved)", updates, completes)
	}
}

func TestTraceDumpLoadRoundTrip(t *testing.T) {
	r := NewRecorder()
	r.Sample(0.0, 0)
	r.Sample(0.5, 5)
	r.Sample(1.0, 10)

	data, err := r.Dump()
	if err != nil {
		t.Fatal(err)
	}

	samples, err := LoadTrace(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 3 {
		t.Fatalf("loaded %d samples, want 3", len(samples))
	}
	if samples[1].Time != 0.5 || samples[1].Value != 5 {
		t.Errorf("sample 1 = %+v, want time 0.5 value 5", samples[1])
	}
}

func TestLoadTraceErrors(t *testing.T) {
	if _, err := LoadTrace([]byte("not json")); err == nil {
		t.Error("expected parse error for malformed input")
	}
	if _, err := LoadTrace([]byte(`{"samples":[]}`)); err == nil {
		t.Error("expected error for empty trace")
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.Sample(1, 1)
	r.Reset()
	if len(r.Samples()) != 0 {
		t.Errorf("samples = %d after Reset, want 0", len(r.Samples()))
	}
}
