package environment

import (
	"fmt"

	"github.com/spf13/afero"
)

// New builds the resolver for mode. dir is only used by ModeFile.
func New(mode string, fs afero.Fs, dir string) (Resolver, error) {
	switch mode {
	case ModeInline, "":
		return Builtin(), nil
	case ModeFile:
		return NewFileResolver(fs, dir), nil
	default:
		return nil, fmt.Errorf("unknown resolver mode %q", mode)
	}
}
