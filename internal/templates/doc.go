// Package templates resolves runtime template trees. A template base holds one
// directory per runtime identifier (e.g. python3.9/); the base is either a
// directory on disk or the set of templates compiled into the binary.
package templates
