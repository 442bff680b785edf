package pantry

// Config holds configuration for the pantry blob store.
type Config struct {
	// Backend selects where the inventory blob lives (file, s3).
	Backend string `mapstructure:"backend" default:"file"`
	// File is the path of the inventory JSON file for the file backend.
	File string `mapstructure:"file" default:"pantry.json"`
	// Object is the object name of the inventory blob for the s3 backend.
	Object string `mapstructure:"object" default:"pantry.json"`
}

const (
	BackendFile   = "file"
	BackendObject = "s3"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendObject:
		return true
	default:
		return false
	}
}
