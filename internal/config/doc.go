// Package config handles application configuration loading and validation.
//
// Configuration comes from the environment and a .env file, with defaults for
// every missing key. A missing .env file is created with the defaults and
// reported through ErrDefaultsWritten so the operator can edit it before the
// server ever starts. Every value is validated once at startup.
package config
