package environment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigNotFound is returned when an environment name has no configuration.
var ErrConfigNotFound = errors.New("configuration not found")

// NotFoundError names the unknown environment and the ones that do exist.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown environment: %s. Available: %s", e.Name, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

func notFound(name string, available []string) error {
	return &NotFoundError{Name: name, Available: available}
}
