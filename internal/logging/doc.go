// Package logging builds the application's leveled logger. Output is
// human-readable text on a terminal and logfmt otherwise, so logs captured
// from a desktop launcher stay machine-parseable.
package logging
