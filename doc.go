// Package unio opens files with well-defined text encodings even when
// the host environment reports inconsistent or broken ones.
//
// Text modes always read and write UTF-8 (tolerating a byte order mark
// on reads), because that is the only choice that makes data exchange
// feasible. Binary modes pass bytes through untouched. On platforms
// whose filesystem encoding reporting is unreliable, surrogate escapes
// in a path are restored to raw bytes before the file is opened.
//
// The subpackages charenc, stream and stdio hold the encoding
// resolver, the stream prober and fixer, and the standard stream
// accessors.
package unio
