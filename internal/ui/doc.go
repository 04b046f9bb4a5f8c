// Package ui contains the Fyne-based desktop window of the converter. It owns
// a single AppState, wires the file picker, format selector and convert button
// to the conversion service, and renders localized status and diagnostics.
package ui
