// Package platform contains OS integration and external tooling glue:
// revealing and opening converted files, locating the transcoder on PATH,
// and filesystem helpers.
package platform
