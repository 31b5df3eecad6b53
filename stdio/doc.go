// Package stdio models the process-wide standard streams as explicit,
// replaceable slots and provides binary and text views of them.
//
// The binary accessors are explicit "give me bytes" requests and fail
// with ErrBrokenEnvironment when no binary channel can be located. The
// text accessors never fail; they return a corrected adapter or, when
// nothing can be repaired, the stream unchanged.
//
// All substitution of a standard stream goes through the scoped
// primitives WrapStandardStream and CaptureStdout, which restore the
// previous stream on every exit path, including panics, and nest in
// LIFO order. A single logical thread of execution is assumed; the
// slots are not safe for concurrent mutation.
package stdio
