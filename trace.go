package aspen

import (
	"encoding/json"
	"fmt"
)

// TraceSample is one observed point of a tween's playback.
type TraceSample struct {
	Time  float64 `json:"time"`
	Scale float64 `json:"scale"`
	Value float64 `json:"value,omitempty"`
}

// traceDump is the top-level JSON structure for a recorded trace.
type traceDump struct {
	Samples []TraceSample `json:"samples"`
}

// Recorder captures a tween's progress over time for automated tests and
// offline curve inspection. Attach it to a Settings value with Observe, or
// probe values by hand with Sample, then serialize with Dump and reload
// with [LoadTrace].
type Recorder struct {
	samples []TraceSample
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe chains the recorder onto s's on-update and on-complete
// callbacks, preserving any callbacks already set. Every sampled step of a
// tween driven by s is appended as a TraceSample of its elapsed time and
// scale.
func (r *Recorder) Observe(s *Settings) {
	prevUpdate := s.onUpdate
	s.SetOnUpdate(func(t *Tween) {
		r.samples = append(r.samples, TraceSample{Time: t.Elapsed(), Scale: t.Scale()})
		if prevUpdate != nil {
			prevUpdate(t)
		}
	})
	prevComplete := s.onComplete
	s.SetOnComplete(func(t *Tween) {
		r.samples = append(r.samples, TraceSample{Time: t.Elapsed(), Scale: t.Scale()})
		if prevComplete != nil {
			prevComplete(t)
		}
	})
}

// Sample appends a manual probe, pairing a time with an applied value.
func (r *Recorder) Sample(time, value float64) {
	r.samples = append(r.samples, TraceSample{Time: time, Value: value})
}

// Samples returns the recorded samples in capture order. The returned
// slice is the recorder's own; do not mutate it while recording continues.
func (r *Recorder) Samples() []TraceSample {
	return r.samples
}

// Reset discards all recorded samples.
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
}

// Dump serializes the recorded samples as indented JSON, suitable for
// golden files.
func (r *Recorder) Dump() ([]byte, error) {
	return json.MarshalIndent(traceDump{Samples: r.samples}, "", "  ")
}

// LoadTrace parses a JSON trace produced by [Recorder.Dump].
func LoadTrace(jsonData []byte) ([]TraceSample, error) {
	var dump traceDump
	if err := json.Unmarshal(jsonData, &dump); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	if len(dump.Samples) == 0 {
		return nil, fmt.Errorf("parse trace: no samples")
	}
	return dump.Samples, nil
}
