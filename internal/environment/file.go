package environment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const fileExt = ".json"

// FileResolver reads <dir>/<name>.json, each holding {"baseUrl", "description"}.
type FileResolver struct {
	fs  afero.Fs
	dir string
}

func NewFileResolver(fs afero.Fs, dir string) *FileResolver {
	return &FileResolver{fs: fs, dir: dir}
}

func (r *FileResolver) Resolve(name string) (Config, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return Config{}, notFound(name, r.Names())
	}

	data, err := afero.ReadFile(r.fs, filepath.Join(r.dir, name+fileExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, notFound(name, r.Names())
		}
		return Config{}, fmt.Errorf("reading environment %s: %w", name, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding environment %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid environment %s: %w", name, err)
	}

	return cfg, nil
}

// Names lists the environments found in the directory, sorted.
func (r *FileResolver) Names() []string {
	infos, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(info.Name(), fileExt))
	}
	sort.Strings(names)

	return names
}
