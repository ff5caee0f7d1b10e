package server

// Server is what cmd/server runs: the assembled transport stack behind one
// lifecycle.
type Server interface {
	// RunServer serves requests until a stop signal arrives, then drains
	// in-flight connections before returning.
	RunServer()

	// Shutdown stops accepting new connections and releases listeners. It is
	// also invoked internally by the signal handler.
	Shutdown()
}
