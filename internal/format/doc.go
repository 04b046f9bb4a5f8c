// Package format resolves which output formats are offered for an input file.
// Everything here is a pure table lookup: extensions are normalized to a
// canonical name, mapped to a media kind, and the matching output pool is
// returned without the input's own format.
package format
