package repository

import "context"

// SequenceRepository contadores monotónicos por nombre (in, out, request).
// Next debe ejecutarse en la misma transacción que el registro que usa el valor.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
