// Package stream probes streams of uncertain configuration and wraps
// them in corrected text adapters.
//
// Go streams traffic in bytes, so a stream counts as text only when it
// declares a character encoding through the TextStream interface; the
// zero-length probe in ProbeReader/ProbeWriter then only distinguishes
// a usable byte stream from a broken one. Probing is a tri-state
// result (binary / text / unknown), and callers supply the default for
// the unknown case.
//
// The Force functions repair misconfigured text streams. They never
// fail: when a stream cannot be repaired it is returned unchanged,
// because in a broken environment wrong decoding beats crashing simple
// input and output operations.
//
// # Example: fixing a writer
//
//	w := stream.ForceTextWriter(mystery,
//	    stream.WithEncoding("utf-8"),
//	    stream.WithErrorMode(charenc.Replace))
//	fmt.Fprintln(w, "héllo")
//
// Adapters created here never own the stream they wrap. Closing or
// discarding an adapter leaves the underlying stream open; the
// underlying resource is shared with the process-wide standard stream
// slots.
package stream
