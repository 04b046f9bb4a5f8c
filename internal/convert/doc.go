// Package convert runs the external transcoder for one conversion request and
// classifies what happened: rejected before launch, failed to launch, ran and
// failed, or succeeded. Output files are written next to the input as
// <stem><suffix>.<ext> and existing files are overwritten.
package convert
