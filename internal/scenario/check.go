package scenario

import (
	"net/http"
	"strings"
	"time"
)

// Response is what a check sees of one HTTP response.
type Response struct {
	Status   int
	Duration time.Duration
	Header   http.Header
	Body     []byte
}

// Check is a named assertion on a single response.
type Check struct {
	Name string
	Pass func(Response) bool
}

func StatusIn(name string, codes ...int) Check {
	return Check{
		Name: name,
		Pass: func(r Response) bool {
			for _, code := range codes {
				if r.Status == code {
					return true
				}
			}
			return false
		},
	}
}

func FasterThan(name string, limit time.Duration) Check {
	return Check{
		Name: name,
		Pass: func(r Response) bool { return r.Duration < limit },
	}
}

func HasBody(name string) Check {
	return Check{
		Name: name,
		Pass: func(r Response) bool { return len(r.Body) > 0 },
	}
}

func ContentTypeContains(name, contentType string) Check {
	return Check{
		Name: name,
		Pass: func(r Response) bool {
			return strings.Contains(r.Header.Get("Content-Type"), contentType)
		},
	}
}

// Evaluate runs every check against r and reports whether all passed.
func Evaluate(checks []Check, r Response) (map[string]bool, bool) {
	results := make(map[string]bool, len(checks))
	ok := true

	for _, c := range checks {
		passed := c.Pass(r)
		results[c.Name] = passed
		ok = ok && passed
	}

	return results, ok
}
