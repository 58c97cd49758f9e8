// Package logging provides the structured logging interface used by the
// sampler and its adapters. The default backend is zerolog.
package logging
