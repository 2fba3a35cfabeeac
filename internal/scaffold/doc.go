// Package scaffold materializes service directories. For every service it
// creates <output>/lambdas/<service>/ and copies the matching runtime template
// tree into it verbatim; no substitution happens inside copied files.
package scaffold
