// Package cli implements the media-converter command line: format listing,
// single-file conversion, tool diagnostics and the desktop window launcher.
package cli
