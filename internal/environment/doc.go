// Package environment resolves the target environment of a load test run to
// its base URL and description. Configurations come either from the built-in
// table or from one JSON file per environment.
package environment
