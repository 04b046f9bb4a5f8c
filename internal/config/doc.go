// Package config holds the converter's configuration: the TOML file that
// selects the transcoder binary and logging level, and the Fyne-preference
// backed Settings that remember the user's last choices between sessions.
package config
