// Package spec loads swarm specification documents. A document declares a
// "services" mapping of service name to configuration; the loader keeps the
// services in declaration order and resolves the runtime each one asks for.
// Schema validation against the embedded JSON Schema is available separately
// through Validate and ValidateFile.
package spec
