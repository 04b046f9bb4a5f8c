// Package model defines domain data structures shared by the converter: media
// kinds, the closed set of output formats, conversion requests and their
// classified results. Types are plain values so the UI can bind them directly.
package model
