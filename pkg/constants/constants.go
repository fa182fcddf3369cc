package constants

const (
	// ConfigName is the base name of the config file read at startup.
	ConfigName   = "govently"
	ConfigFormat = "yaml"

	// ServiceName identifies this service in logs, traces and events.
	ServiceName = "govently_backend"
)
