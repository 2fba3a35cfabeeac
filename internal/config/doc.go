// Package config manages user-level settings stored at ~/.swarmgen/config.yaml.
// Every key can also be supplied through a SWARMGEN_-prefixed environment
// variable, e.g. SWARMGEN_TEMPLATES_DIR for templates_dir.
package config
