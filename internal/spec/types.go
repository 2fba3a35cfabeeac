package spec

// DefaultRuntime is used for services that do not declare a runtime.
const DefaultRuntime = "nodejs18.x"

// Specification is a parsed swarm document.
type Specification struct {
	// Source is the path the document was read from, if any.
	Source   string
	Services []Service
}

// Service is one entry of the services mapping.
type Service struct {
	Name   string
	Line   int // line of the service key in the source document
	Config ServiceConfig
}

// ServiceConfig holds the per-service settings. Only Runtime is interpreted;
// every other key is preserved in Extra and otherwise ignored.
type ServiceConfig struct {
	Runtime string
	Extra   map[string]any
}

// RuntimeOr returns the declared runtime, or fallback when none was declared.
func (c ServiceConfig) RuntimeOr(fallback string) string {
	if c.Runtime != "" {
		return c.Runtime
	}
	return fallback
}

// Names returns the service names in declaration order.
func (s *Specification) Names() []string {
	names := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		names = append(names, svc.Name)
	}
	return names
}
