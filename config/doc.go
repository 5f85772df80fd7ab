// Package config loads the settings of the load test tooling from an optional
// YAML file and environment variables: which environment to target, how
// environments are resolved, how endpoints are selected, and logging.
package config
