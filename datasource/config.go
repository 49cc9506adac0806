package datasource

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by the client
const (
	EnvAPIKey  = "TW_KEY"
	EnvBaseURL = "TW_BASE_URL"
)

// DefaultKeyFile is the file checked for an API key before EnvAPIKey
const DefaultKeyFile = "./key"

// Config represents the command line configuration
type Config struct {
	// Where the API key comes from
	KeyFile string
	KeyEnv  string

	// Upstream API root, empty for the provider default
	BaseURL string

	Metric  bool
	Verbose bool
	Debug   bool

	// Location terms left after flag parsing
	Terms []string
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		KeyFile: DefaultKeyFile,
		KeyEnv:  EnvAPIKey,
	}
}

// LoadEnvFile loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(filename string) error {
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return nil
}

// LoadConfig parses command line arguments (without the program name).
// Usage and flag errors are written to output.
func LoadConfig(name string, args []string, output io.Writer) (*Config, error) {
	config := DefaultConfig()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [flags] <location terms...>\n\nExample: %s Ames IA USA\n\nFlags:\n", name, name)
		flags.PrintDefaults()
	}

	flags.StringVar(&config.KeyFile, "key-file", config.KeyFile, "File holding the WeatherAPI.com key (falls back to $"+EnvAPIKey+")")
	flags.BoolVar(&config.Metric, "metric", false, "Print Celsius temperatures instead of Fahrenheit")
	flags.BoolVar(&config.Verbose, "v", false, "Log the upstream request")
	flags.BoolVar(&config.Debug, "debug", false, "Dump the decoded report to stderr")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	config.BaseURL = os.Getenv(EnvBaseURL)
	config.Terms = flags.Args()

	return config, nil
}
