package models

// Credentials are resolved once per invocation from flags, environment and
// config, then handed to every command handler. They are never written anywhere.
type Credentials struct {
	// resolved address of the bridge, optionally with a port
	Host string
	// the API key (bridge "username") issued during pairing
	Key     string
	Verbose bool
}

// a light as reported by the bridge's v1 lights endpoint
type Light struct {
	ID   int
	Name string
	On   bool
}
