package logging

import (
	"context"
	"maps"
)

type fieldsKey struct{}

// ContextWithFields returns ctx carrying fields for console loggers to merge
// into later entries. Fields already on ctx are kept unless overridden.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns a copy of the fields stored on ctx.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	stored, _ := ctx.Value(fieldsKey{}).(map[string]any)
	if len(stored) == 0 {
		return nil
	}
	return maps.Clone(stored)
}
