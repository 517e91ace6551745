// Package errors provides structured error types for the rwbin cursors.
//
// Errors are categorized by Phase (which cursor failed) and Kind (error category).
// The Error type carries the cursor position, the byte counts of a refused
// transfer, an optional field path, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("header", "flags").
//		Position(12).
//		Detail("unknown flag bits 0x%x", bits).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotEnoughBytes(errors.PhaseDecode, pos, 4, 2)
//	err := errors.IO(errors.PhaseEncode, pos, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind; IsKind matches on Kind alone.
package errors
