package environment

type entry struct {
	name   string
	config Config
}

// InlineResolver resolves names against a fixed, ordered table.
type InlineResolver struct {
	entries []entry
}

// Builtin returns the resolver for the environments of the sportdeets API.
func Builtin() *InlineResolver {
	return NewInlineResolver().
		With("dev", Config{
			BaseURL:     "https://api-dev.sportdeets.com",
			Description: "Development environment",
		}).
		With("prod-internal", Config{
			BaseURL:     "https://api-int.sportdeets.com",
			Description: "Production cluster - internal (direct to cluster, no APIM rate limits)",
		}).
		With("prod-external", Config{
			BaseURL:     "https://api.sportdeets.com",
			Description: "Production - external (through APIM, rate limited to 5000 req/min)",
		})
}

func NewInlineResolver() *InlineResolver {
	return &InlineResolver{}
}

// With adds or replaces the config for name. Insertion order is kept for Names.
func (r *InlineResolver) With(name string, cfg Config) *InlineResolver {
	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].config = cfg
			return r
		}
	}
	r.entries = append(r.entries, entry{name: name, config: cfg})
	return r
}

func (r *InlineResolver) Resolve(name string) (Config, error) {
	for _, e := range r.entries {
		if e.name == name {
			return e.config, nil
		}
	}
	return Config{}, notFound(name, r.Names())
}

func (r *InlineResolver) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}
