package spec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

const (
	keyServices = "services"
	keyRuntime  = "runtime"
)

// Load reads and parses the spec document at path.
func Load(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading spec %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses a spec document. source is only used in error messages.
//
// The document is decoded into a yaml.Node tree rather than a Go map so that
// services come back in the order they were declared.
func Parse(data []byte, source string) (*Specification, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}

	s := &Specification{Source: source}

	// Empty document.
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return s, nil
	}

	root := resolve(doc.Content[0])
	if isNull(root) {
		return s, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Path: source, Line: root.Line, Err: errors.New("document must be a mapping")}
	}

	services := lookup(root, keyServices)
	if services == nil || isNull(services) {
		return s, nil
	}
	if services.Kind != yaml.MappingNode {
		return nil, &ParseError{Path: source, Line: services.Line, Err: errors.New("'services' must be a mapping of service name to configuration")}
	}

	seen := make(map[string]int, len(services.Content)/2)
	for i := 0; i+1 < len(services.Content); i += 2 {
		keyNode := resolve(services.Content[i])
		valNode := resolve(services.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode {
			return nil, &ParseError{Path: source, Line: keyNode.Line, Err: errors.New("service name must be a scalar")}
		}
		name := keyNode.Value
		if line, dup := seen[name]; dup {
			return nil, &ParseError{Path: source, Line: keyNode.Line, Err: fmt.Errorf("service %q already declared on line %d", name, line)}
		}
		seen[name] = keyNode.Line

		cfg, err := parseServiceConfig(valNode)
		if err != nil {
			return nil, &ParseError{Path: source, Line: valNode.Line, Err: fmt.Errorf("service %q: %w", name, err)}
		}

		s.Services = append(s.Services, Service{
			Name:   name,
			Line:   keyNode.Line,
			Config: cfg,
		})
	}

	return s, nil
}

// parseServiceConfig decodes one service entry. A null entry is an empty
// configuration.
func parseServiceConfig(n *yaml.Node) (ServiceConfig, error) {
	var cfg ServiceConfig
	if isNull(n) {
		return cfg, nil
	}
	if n.Kind != yaml.MappingNode {
		return cfg, errors.New("configuration must be a mapping")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolve(n.Content[i])
		v := resolve(n.Content[i+1])

		if k.Value == keyRuntime {
			if isNull(v) {
				continue
			}
			if v.Kind != yaml.ScalarNode {
				return cfg, errors.New("'runtime' must be a string")
			}
			cfg.Runtime = v.Value
			continue
		}

		var extra any
		if err := v.Decode(&extra); err != nil {
			return cfg, fmt.Errorf("decoding %q: %w", k.Value, err)
		}
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}
		cfg.Extra[k.Value] = extra
	}

	return cfg, nil
}

// lookup returns the value node for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if k := resolve(m.Content[i]); k.Kind == yaml.ScalarNode && k.Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
