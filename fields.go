package aspen

import (
	"fmt"
	"reflect"
)

// Fields is the registration table for named-goal tweens: it maps a goal
// name to the float64 slot it reads from and, by registration, declares the
// slot tweenable. Build one by hand or with [FieldsOf]. A goal naming an
// unregistered (or nil) slot is a fatal configuration error at Start.
type Fields map[string]*float64

// FieldsOf builds a Fields table from a pointer to a struct, registering
// every exported float64 field under its field name. It is a convenience
// over building the table by hand and returns an error when target is not
// a non-nil pointer to a struct.
func FieldsOf(target any) (Fields, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("aspen: FieldsOf target must be a non-nil pointer to a struct, got %T", target)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("aspen: FieldsOf target must point to a struct, got %T", target)
	}

	fields := Fields{}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Float64 {
			continue
		}
		fields[f.Name] = v.Field(i).Addr().Interface().(*float64)
	}
	return fields, nil
}

// varBinding resolves named goals against a Fields table. Capture validates
// every goal before snapshotting any start value, so a misconfigured goal
// aborts the start with no partial state. Apply batches all interpolated
// values into one reusable map and hands it to a single callback per step;
// the engine never writes the target's fields itself.
type varBinding struct {
	settings *Settings
	target   Fields
	fn       func(map[string]float64)

	names  []string
	starts []float64
	ends   []float64
	values map[string]float64
}

func (b *varBinding) Capture() error {
	b.names = b.names[:0]
	b.starts = b.starts[:0]
	b.ends = b.ends[:0]
	if b.settings == nil {
		return nil
	}

	// Validate first: no snapshot is kept when any goal is bad.
	var badName string
	b.settings.EachGoal(func(name string, _ float64) {
		if badName != "" {
			return
		}
		if slot, ok := b.target[name]; !ok || slot == nil {
			badName = name
		}
	})
	if badName != "" {
		return fmt.Errorf("aspen: goal field %q is not registered on the target", badName)
	}

	b.settings.EachGoal(func(name string, value float64) {
		b.names = append(b.names, name)
		b.starts = append(b.starts, *b.target[name])
		b.ends = append(b.ends, value)
	})
	if b.values == nil {
		b.values = make(map[string]float64, len(b.names))
	}
	return nil
}

func (b *varBinding) Apply(progress float64) {
	if b.fn == nil || len(b.names) == 0 {
		return
	}
	clear(b.values)
	for i := range b.names {
		start := b.starts[i]
		b.values[b.names[i]] = start + (b.ends[i]-start)*progress
	}
	b.fn(b.values)
}
