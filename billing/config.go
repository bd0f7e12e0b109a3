package billing

import (
	"encore.dev/config"
)

type UploadsConfig struct {
	// Dir is the content directory bill images are stored in.
	Dir config.String
	// MaxBytes caps a single bill image.
	MaxBytes config.Int64
}

type TemporalConfig struct {
	HostPort  config.String
	Namespace config.String
	TaskQueue config.String
}

type Config struct {
	Uploads  UploadsConfig
	Temporal TemporalConfig
}

var cfg = config.Load[*Config]()
