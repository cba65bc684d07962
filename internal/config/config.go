package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	keyHost               = "HOST"
	keyPort               = "PORT"
	keyConsolePrint       = "CONSOLE_PRINT"
	keyResponseStatusCode = "RESPONSE_STATUS_CODE"

	defaultHost               = "127.0.0.1"
	defaultPort               = "8080"
	defaultConsolePrint       = "0"
	defaultResponseStatusCode = "204"

	minPort       = 1
	maxPort       = 65535
	minStatusCode = 100
	maxStatusCode = 599
	maxOctet      = 255
	octetCount    = 4

	envFilePermissions = 0644
)

// defaults is ordered: it is written to a fresh env file as is.
var defaults = []struct {
	key   string
	value string
}{
	{keyHost, defaultHost},
	{keyPort, defaultPort},
	{keyConsolePrint, defaultConsolePrint},
	{keyResponseStatusCode, defaultResponseStatusCode},
}

type Config struct {
	Host               string
	Port               int
	ConsolePrint       bool
	ResponseStatusCode int
}

// Address returns the host:port pair the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Loader resolves the configuration from the process environment and an
// env file. Lookup defaults to os.LookupEnv.
type Loader struct {
	Path   string
	Lookup func(key string) (string, bool)
}

func NewLoader(path string) *Loader {
	return &Loader{
		Path:   path,
		Lookup: os.LookupEnv,
	}
}

func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}

// Load writes a default env file and returns ErrDefaultsWritten when none
// exists yet. Otherwise it reads the file and validates the result.
func (l *Loader) Load() (*Config, error) {
	created, err := l.ensureFile()
	if err != nil {
		return nil, err
	}
	if created {
		return nil, ErrDefaultsWritten
	}

	fileValues, err := godotenv.Read(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", l.Path, err)
	}

	return Parse(l.chain(fileValues))
}

func (l *Loader) ensureFile() (bool, error) {
	_, err := os.Stat(l.Path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking env file %s: %w", l.Path, err)
	}

	if err := writeDefaults(l.Path); err != nil {
		return false, err
	}
	return true, nil
}

func writeDefaults(path string) error {
	var builder strings.Builder
	for _, d := range defaults {
		builder.WriteString(d.key + "=" + d.value + "\n")
	}

	if err := os.WriteFile(path, []byte(builder.String()), envFilePermissions); err != nil {
		return fmt.Errorf("writing default env file %s: %w", path, err)
	}
	return nil
}

// chain looks a key up in the environment first, then in the env file.
// Variables already set in the environment win, like godotenv.Load.
func (l *Loader) chain(fileValues map[string]string) func(string) (string, bool) {
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return func(key string) (string, bool) {
		if value, ok := lookup(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	}
}

// Parse resolves every key through lookup, falling back to the defaults for
// missing keys, and validates the values. A key that is present but empty
// stays empty.
func Parse(lookup func(key string) (string, bool)) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		return defaultValue
	}

	host := get(keyHost, defaultHost)
	if err := validateHost(host); err != nil {
		return nil, err
	}

	port, err := parseRange(get(keyPort, defaultPort), minPort, maxPort, ErrPortInvalid)
	if err != nil {
		return nil, err
	}

	consolePrint, err := parseRange(get(keyConsolePrint, defaultConsolePrint), 0, 1, ErrConsolePrintInvalid)
	if err != nil {
		return nil, err
	}

	statusCode, err := parseRange(get(keyResponseStatusCode, defaultResponseStatusCode), minStatusCode, maxStatusCode, ErrStatusCodeInvalid)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:               host,
		Port:               port,
		ConsolePrint:       consolePrint == 1,
		ResponseStatusCode: statusCode,
	}, nil
}

func validateHost(host string) error {
	if host == "" {
		return ErrHostMissing
	}

	octets := strings.Split(host, ".")
	if len(octets) != octetCount {
		return fmt.Errorf("%w: %q has %d octets", ErrHostInvalid, host, len(octets))
	}

	for _, octet := range octets {
		if !isDigits(octet) {
			return fmt.Errorf("%w: %q has non-numeric octet %q", ErrHostInvalid, host, octet)
		}
		value, err := strconv.Atoi(octet)
		if err != nil || value > maxOctet {
			return fmt.Errorf("%w: %q has out of range octet %q", ErrHostInvalid, host, octet)
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseRange(raw string, lo, hi int, sentinel error) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", sentinel, raw)
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]", sentinel, value, lo, hi)
	}
	return value, nil
}
