package helper

import (
	"encoding/json"
	"errors"
)

// PatchField distinguishes an absent JSON key from an explicit null and from a value.
type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Set builds a present field holding v.
func Set[T any](v T) PatchField[T] { return PatchField[T]{Present: true, Value: &v} }

// Null builds a present field holding an explicit null.
func Null[T any]() PatchField[T] { return PatchField[T]{Present: true} }

// Apply writes the value into a non-nullable destination. Explicit null is rejected.
func (p PatchField[T]) Apply(field string, dst *T) error {
	if !p.Present {
		return nil
	}
	if p.Value == nil {
		return InvalidField(field, "cannot be null")
	}
	*dst = *p.Value
	return nil
}

// ApplyNullable writes the value into a nullable destination. Explicit null clears it.
func (p PatchField[T]) ApplyNullable(dst **T) {
	if !p.Present {
		return
	}
	if p.Value == nil {
		*dst = nil
		return
	}
	v := *p.Value
	*dst = &v
}

// JoinPatchErrors merges the per-field errors of one patch into a single validation error.
func JoinPatchErrors(errs ...error) error {
	var fields map[string][]string
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ae *AppError
		if !errors.As(err, &ae) || len(ae.Fields) == 0 {
			return err
		}
		if fields == nil {
			fields = map[string][]string{}
		}
		for k, v := range ae.Fields {
			fields[k] = append(fields[k], v...)
		}
	}
	if fields == nil {
		return nil
	}
	return &AppError{Kind: ErrValidation, Message: "validation failed", Fields: fields}
}
