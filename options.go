package tempuscore

import "go.uber.org/zap"

/*
Option defines a functional configuration modifier for Config.

================================================================================
DESIGN PATTERN
================================================================================

This file implements the functional options pattern. New(opts...)
applies each Option over documented defaults before constructing the
Engine:

    engine := New(
        WithMaxItems(50_000),
        WithCleanupInterval(250),
        WithLogger(zap.NewExample()),
    )

Adding an option never changes New's signature, so existing callers are
unaffected by new knobs (AOF path, logger, max items, cleanup interval).

================================================================================
BENEFITS
================================================================================

1. API Stability   -> New's signature never needs to grow; a new knob is
                       a new With* function, not a new parameter in every
                       caller's argument list.
2. Readability     -> Call sites read like a sentence naming exactly the
                       knobs they care about, with every other tunable
                       left at its documented default.
3. Extensibility   -> Options compose freely and apply in the order
                       given, so a caller can override a default already
                       set by an earlier Option.
*/

// Config holds the tunables applied by New. maxItems bounds each
// namespace LRU independently (both namespaces share the same bound);
// reaperInterval, logger and aofPath each map directly onto the
// Engine field of the same purpose (see engine.go's STRUCTURE FIELDS).
type Config struct {
	maxItems       int
	reaperInterval int64 // ms; <= 0 disables the periodic reaper
	logger         *zap.Logger
	aofPath        string
}

// Option mutates a Config before New builds the Engine from it.
type Option func(*Config)

/*
WithMaxItems sets the per-namespace capacity bound (minimum 1).

BEHAVIOR:
Applies identically to both stringLRU and binaryLRU; there is no way to
give the two namespaces independent bounds, since SetMaxItems resizes
them together too.
*/
func WithMaxItems(n int) Option {
	return func(c *Config) { c.maxItems = n }
}

/*
WithCleanupInterval sets the periodic reaper's tick interval in
milliseconds.

BEHAVIOR:
A value <= 0 disables the background reaper entirely; lazy expiration
(checked by Get, Set, TTL and the other per-key operations, see
ttl.go) still reclaims expired keys
on access regardless of this setting, so disabling the reaper trades
memory held by unaccessed expired keys for one less background
goroutine.
*/
func WithCleanupInterval(ms int64) Option {
	return func(c *Config) { c.reaperInterval = ms }
}

/*
WithLogger attaches a zap logger for best-effort diagnostics.

WHY THIS MATTERS:
Errors that must not change observable behavior (a failed AOF append,
for example) become log lines here instead of returned errors, so the
caller's hot path never has to decide what to do about a disk write it
didn't ask to make. A nil logger (the default) uses zap.NewNop(), so an
Engine built without WithLogger never touches a real sink.
*/
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.logger = l }
}

/*
WithAOFPath enables the append-only log at path as part of New.

BEHAVIOR:
Equivalent to calling EnableAOF(path) immediately after New returns,
except that a failure here is logged (via WithLogger's logger, or the
default no-op logger) rather than surfaced as a returned error, since
New itself has no error return.
*/
func WithAOFPath(path string) Option {
	return func(c *Config) { c.aofPath = path }
}
