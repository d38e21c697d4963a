// Package tempuscore is the embeddable in-process key-value cache engine:
// a typed value store with dual-namespace LRU eviction, TTL expiry, an
// append-only log, a numeric secondary index over JSON values, pub/sub,
// keyspace notifications and a tiny text command language.
//
// Engine is the single owned store instance: every exported method
// acquires Engine.mu in the mode the operation calls for (non-reordering
// reads take RLock, everything else takes Lock), mutates the two LRUs
// and any secondary state, and returns, following a lock, lazy-expire,
// mutate/read, unlock pattern. AOF appends happen after the mutation
// commits and after the lock is released, except during AOF load, which
// holds the write lock for the entire replay.
package tempuscore

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tempuscore/engine/internal/aoflog"
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/notify"
	"github.com/tempuscore/engine/internal/numindex"
	"github.com/tempuscore/engine/internal/pubsub"
	"github.com/tempuscore/engine/internal/streamid"
	"github.com/tempuscore/engine/internal/valuekind"
)

// DefaultMaxItems is the default per-namespace capacity bound.
const DefaultMaxItems = 100_000

// DefaultReaperIntervalMs is the periodic reaper's sleep interval, in
// milliseconds.
const DefaultReaperIntervalMs = 250

/*
Engine owns all store state: both namespace LRUs, the numeric index
set, pub/sub and notification queues, the stream id counter, the AOF
writer, and the running Stats.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

Engine is not one cache but two: stringLRU keyed by string keys (the
Bytes/Hash/List/Set/SortedSet/Stream operations in cache.go, hash.go,
list.go, set.go, zset.go and stream.go) and binaryLRU keyed by raw byte
slices converted to string (item.go's Bytes-only operations). Both LRUs
share the same eviction mechanism, the same Stats, and the same AOF
writer; they are evicted, capacity-resized, and cleared together but
hold entirely independent key spaces, so "foo" in the string namespace
and []byte("foo") in the binary namespace are unrelated entries.

================================================================================
CONCURRENCY MODEL
================================================================================

Engine.mu is a sync.RWMutex, not a plain Mutex: non-reordering reads
(GetMaxItems, Length, Keys) take RLock, while everything that can touch
LRU order, Stats, or the index set takes the exclusive Lock. aofMu is a
second, independent lock guarding only aofWriter/aofPath, so opening,
closing, or swapping the AOF file never blocks a concurrent Get/Set and
vice versa; see aof.go.

================================================================================
STRUCTURE FIELDS
================================================================================

- mu             -> guards stringLRU, binaryLRU, indexes, and stats
- stringLRU      -> string-namespace LRU of valuekind.Value entries
- binaryLRU      -> binary-namespace LRU of valuekind.Value entries
- indexes        -> numeric secondary index over JSON-shaped values (internal/numindex)
- notifyQ        -> keyspace notification queue (internal/notify)
- pubsubState    -> user pub/sub channels and subscriber queues (internal/pubsub)
- streamCounter  -> monotonic id generator for Stream entries (internal/streamid)
- log            -> structured logger, defaults to zap.NewNop() if unset
- aofMu          -> guards aofWriter/aofPath independently of mu
- aofWriter      -> open append-only log writer, nil when AOF is disabled
- aofPath        -> path passed to the most recent EnableAOF call
- reaperStop     -> closed by Close to signal the background reaper to exit
- reaperStopOnce -> makes Close's reaperStop shutdown idempotent
- reaperInterval -> background reaper sleep interval, in milliseconds
- stats          -> running Hits/Misses/Evictions counters

Config and its With* options live in options.go.
*/
type Engine struct {
	mu sync.RWMutex

	stringLRU *lrustore.LRU[string, valuekind.Value]
	binaryLRU *lrustore.LRU[string, valuekind.Value]

	indexes       *numindex.Set
	notifyQ       *notify.Queue
	pubsubState   *pubsub.State
	streamCounter *streamid.Counter
	log           *zap.Logger

	aofMu     sync.Mutex
	aofWriter *aoflog.Writer
	aofPath   string

	reaperStop     chan struct{}
	reaperStopOnce sync.Once
	reaperInterval int64

	stats Stats
}

/*
New constructs an Engine, applies opts over the documented defaults,
and starts the periodic reaper unless the cleanup interval is
disabled.

CONFIGURATION MODEL:
Defaults (DefaultMaxItems, DefaultReaperIntervalMs, a nil logger) are
assembled into a Config, then every Option in opts is applied in order;
see options.go for the functional-options pattern this follows.

INITIALIZATION STEPS:
1. Resolve cfg.maxItems to at least 1 and cfg.logger to zap.NewNop() if unset.
2. Construct the independent subsystems (numindex.Set, notify.Queue,
   pubsub.State, streamid.Counter) before either LRU, since both LRUs'
   eviction callbacks close over the Engine they belong to.
3. Build stringLRU and binaryLRU with onStringEvicted/onBinaryEvicted
   as their eviction hooks (see eviction.go).
4. Start the background reaper unless cfg.reaperInterval is zero.
5. If cfg.aofPath is set, attempt EnableAOF and log a warning on
   failure rather than returning an error from New itself.
*/
func New(opts ...Option) *Engine {
	cfg := Config{
		maxItems:       DefaultMaxItems,
		reaperInterval: DefaultReaperIntervalMs,
		logger:         nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxItems < 1 {
		cfg.maxItems = 1
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		indexes:        numindex.NewSet(),
		notifyQ:        notify.NewQueue(),
		pubsubState:    pubsub.NewState(),
		streamCounter:  streamid.NewCounter(),
		log:            logger,
		reaperStop:     make(chan struct{}),
		reaperInterval: cfg.reaperInterval,
	}
	e.stringLRU = lrustore.New[string, valuekind.Value](cfg.maxItems, e.onStringEvicted)
	e.binaryLRU = lrustore.New[string, valuekind.Value](cfg.maxItems, e.onBinaryEvicted)

	if cfg.reaperInterval > 0 {
		e.startReaper()
	}
	if cfg.aofPath != "" {
		if err := e.EnableAOF(cfg.aofPath); err != nil {
			e.log.Warn("aof: enable at startup failed", zap.String("path", cfg.aofPath), zap.Error(err))
		}
	}
	return e
}

/*
Close stops the background reaper and closes any open AOF handle.

SHUTDOWN MECHANISM:
reaperStopOnce.Do guards the close(e.reaperStop) so a second Close call
cannot panic on a double-close of the channel; the reaper goroutine
(startReaper, janitor.go) selects on reaperStop and exits the first
time it observes the channel closed.

USAGE CONTRACT:
Safe to call once per Engine. It is not safe to resume using an Engine
after Close: the reaper is gone for good and aofWriter has been
released. A test that needs a fresh store after Close should construct
a new Engine via New rather than reuse the closed one.
*/
func (e *Engine) Close() {
	e.reaperStopOnce.Do(func() { close(e.reaperStop) })
	e.aofMu.Lock()
	if e.aofWriter != nil {
		_ = e.aofWriter.Close()
		e.aofWriter = nil
	}
	e.aofMu.Unlock()
}

/*
SetMaxItems resizes both namespace LRUs.

BEHAVIOR:
If the new bound is smaller than either namespace's current size,
least-recently-used entries are evicted (firing eviction notifications
through onStringEvicted/onBinaryEvicted, see eviction.go) until both
namespaces fit within n.

CONCURRENCY:
Takes the exclusive Lock(), since resizing can reorder and remove LRU
entries and must not race with a concurrent Get/Set.
*/
func (e *Engine) SetMaxItems(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stringLRU.Resize(n)
	e.binaryLRU.Resize(n)
}

/*
GetMaxItems returns the configured per-namespace capacity.

RETURNS:
The capacity shared by both namespace LRUs (they are always resized
together by SetMaxItems, so either namespace's Capacity() reports the
same value).
*/
func (e *Engine) GetMaxItems() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stringLRU.Capacity()
}

/*
Length returns the combined entry count across both namespaces.

BEHAVIOR:
Sums stringLRU.Len() and binaryLRU.Len() under a single RLock, so the
two counts are read from a consistent snapshot rather than two
independent locks that could observe an intervening write between them.
*/
func (e *Engine) Length() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stringLRU.Len() + e.binaryLRU.Len()
}

/*
ClearAll removes every entry from both namespaces and drops every
registered numeric index.

BEHAVIOR:
Does not touch the notification queue or pub/sub state; those outlive
a clear. Does append an AOF CLEAR record via appendAOFClear, once the
in-memory clear has been applied and the lock released, whenever AOF
is enabled (appendAOFClear is a no-op if aofWriter is nil, see aof.go),
so replaying the AOF reproduces the clear along with everything else.

CONSISTENCY GUARANTEE:
The in-memory clear and the AOF append are not atomic with each other:
the clear always happens first, under mu, and the AOF record is
written afterward, under aofMu, exactly like every other mutating
operation in this file.
*/
func (e *Engine) ClearAll() {
	e.mu.Lock()
	e.stringLRU.Clear()
	e.binaryLRU.Clear()
	e.indexes = numindex.NewSet()
	e.mu.Unlock()

	e.appendAOFClear()
}
