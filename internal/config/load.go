package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itemkit/itemkit/internal/domain"
	"github.com/spf13/viper"
)

// DefaultEnvFile is the .env file consulted when none is given explicitly.
const DefaultEnvFile = ".env"

// fieldSpec declares one configuration field: its environment variable name
// and its built-in default. Resolution walks OS env, then the .env file, then
// the default, and records which source won.
type fieldSpec struct {
	key string
	def string
}

// fieldSpecs enumerates every configuration field in report order.
var fieldSpecs = []fieldSpec{
	{key: KeyVersion, def: "0.1.0"},
	{key: KeyEnvironment, def: "development"},
	{key: KeyDebug, def: "false"},
	{key: KeyPublishPort, def: "8000"},
	{key: KeyMongoUser, def: "root"},
	{key: KeyMongoPass, def: "pass"},
	{key: KeyMongoHost, def: "mongodb"},
	{key: KeyMongoPort, def: "27017"},
	{key: KeyMongoAuthSource, def: "admin"},
	{key: KeyMongoDatabase, def: "itemkit"},
}

// Load resolves the application configuration from the OS environment, the
// given .env file, and built-in defaults, in that order of precedence.
// A missing .env file is not an error; a malformed one is. Returns a wrapped
// domain.ErrValidation if any resolved value fails its type or format check.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	fileValues, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(fieldSpecs))
	sources := make(map[string]Source, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		values[spec.key], sources[spec.key] = resolveField(spec, fileValues)
	}

	port, err := strconv.Atoi(values[KeyPublishPort])
	if err != nil {
		return nil, fmt.Errorf(
			"%w: %s must be an integer, got %q",
			domain.ErrValidation, KeyPublishPort, values[KeyPublishPort],
		)
	}

	cfg := &Config{
		Server: ServerConfig{
			Version:     values[KeyVersion],
			Environment: values[KeyEnvironment],
			Debug:       strings.EqualFold(values[KeyDebug], "true"),
			PublishPort: port,
		},
		Mongo: MongoConfig{
			User:       values[KeyMongoUser],
			Pass:       values[KeyMongoPass],
			Host:       values[KeyMongoHost],
			Port:       values[KeyMongoPort],
			AuthSource: values[KeyMongoAuthSource],
			Database:   values[KeyMongoDatabase],
		},
		sources: sources,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, describeValidationError(err))
	}

	return cfg, nil
}

// Global validator instance for reuse.
var validate = validator.New()

// resolveField picks the value and provenance for one field.
func resolveField(spec fieldSpec, fileValues map[string]string) (string, Source) {
	if value, ok := os.LookupEnv(spec.key); ok {
		return value, SourceOS
	}
	if value, ok := fileValues[spec.key]; ok {
		return value, SourceFile
	}
	return spec.def, SourceDefault
}

// readEnvFile parses a dotenv-style file into a key/value map. Keys are
// normalized to upper case so lookups match the declared env var names.
func readEnvFile(path string) (map[string]string, error) {
	if !fileExists(path) {
		return map[string]string{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	values := make(map[string]string)
	for _, key := range v.AllKeys() {
		values[strings.ToUpper(key)] = v.GetString(key)
	}
	return values, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// describeValidationError flattens a validator error into a compact,
// human-readable list of failing fields.
func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Report writes a human-readable listing of every resolved field, its value
// and its source. Secrets are masked. Intended for startup diagnostics when
// the debug flag is set; the exact format is not a contract.
func (c *Config) Report(w io.Writer) {
	values := map[string]string{
		KeyVersion:         c.Server.Version,
		KeyEnvironment:     c.Server.Environment,
		KeyDebug:           strconv.FormatBool(c.Server.Debug),
		KeyPublishPort:     strconv.Itoa(c.Server.PublishPort),
		KeyMongoUser:       c.Mongo.User,
		KeyMongoPass:       c.Mongo.Pass,
		KeyMongoHost:       c.Mongo.Host,
		KeyMongoPort:       c.Mongo.Port,
		KeyMongoAuthSource: c.Mongo.AuthSource,
		KeyMongoDatabase:   c.Mongo.Database,
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "=== Configuration (with sources) ===")
	for _, key := range keys {
		value := values[key]
		if strings.Contains(key, "PASS") && value != "" {
			value = "***"
		}
		fmt.Fprintf(w, "  %s: %s [%s]\n", key, value, c.sources[key])
	}
	fmt.Fprintf(w, "  MONGO_URI: %s [computed]\n", c.Mongo.RedactedURI())
	fmt.Fprintln(w, "====================================")
}
