package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // directory holding profile descriptors, e.g. $HOME
}
