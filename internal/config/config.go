package config

import "fmt"

// Source identifies where a resolved configuration value came from.
type Source string

// Source provenance values, highest precedence first.
const (
	SourceOS      Source = "OS"
	SourceFile    Source = ".env"
	SourceDefault Source = "default"
)

// Environment variable names. These are the public configuration surface of
// the service; the same keys work in the OS environment and in the .env file.
const (
	KeyVersion         = "VERSION"
	KeyEnvironment     = "ENVIRONMENT"
	KeyDebug           = "DEBUG"
	KeyPublishPort     = "PUBLISH_PORT"
	KeyMongoUser       = "MONGO_USER"
	KeyMongoPass       = "MONGO_PASS"
	KeyMongoHost       = "MONGO_HOST"
	KeyMongoPort       = "MONGO_PORT"
	KeyMongoAuthSource = "MONGO_AUTH_SOURCE"
	KeyMongoDatabase   = "MONGO_DATABASE"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `validate:"required"`
	Mongo  MongoConfig  `validate:"required"`

	// sources records the provenance of every resolved field, keyed by the
	// environment variable name.
	sources map[string]Source
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Version     string `validate:"required"`
	Environment string `validate:"required"`
	Debug       bool
	PublishPort int `validate:"required,gt=0,lt=65536"`
}

// MongoConfig contains all MongoDB-related configuration settings.
type MongoConfig struct {
	User       string `validate:"required"`
	Pass       string `validate:"required"`
	Host       string `validate:"required"`
	Port       string `validate:"required,numeric"`
	AuthSource string `validate:"required"`
	Database   string `validate:"required"`
}

// URI returns the MongoDB connection string computed from the settings.
func (m MongoConfig) URI() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s/%s?authSource=%s",
		m.User, m.Pass, m.Host, m.Port, m.Database, m.AuthSource,
	)
}

// RedactedURI returns the connection string with the password masked,
// suitable for logs.
func (m MongoConfig) RedactedURI() string {
	masked := m
	masked.Pass = "***"
	return masked.URI()
}

// Source returns the provenance of the field with the given environment
// variable name, or the empty string for an unknown field.
func (c *Config) Source(key string) Source {
	return c.sources[key]
}

// Sources returns a copy of the per-field provenance map.
func (c *Config) Sources() map[string]Source {
	out := make(map[string]Source, len(c.sources))
	for k, v := range c.sources {
		out[k] = v
	}
	return out
}
