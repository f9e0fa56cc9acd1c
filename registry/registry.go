// Package registry manages named tag databases by integer handle, the way a
// host process keeps one Registry alive for its whole lifetime and creates/
// releases Databases against it by handle.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sunho/sdsearch/config"
	"github.com/sunho/sdsearch/tagdb"
	"github.com/sunho/sdsearch/util"
)

// Logger is the minimal instrumentation hook a Registry accepts.
type Logger interface {
	Printf(format string, v ...any)
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...any) {}

// UnknownHandleError is raised (via panic, see Get/Release) when a caller
// references a handle that was never created or was already released. The
// spec treats this as a programmer error, not a recoverable condition.
type UnknownHandleError struct {
	Handle int32
}

func (e *UnknownHandleError) Error() string {
	return fmt.Sprintf("registry: unknown database handle %d", e.Handle)
}

// Registry maps integer handles to live *tagdb.Database instances. Create
// and Release mutate the handle map and are synchronized against each other
// and against Get with an RWMutex; Load/Search on an individual Database
// remain the caller's responsibility to keep single-threaded per the
// engine's per-Database concurrency model.
type Registry struct {
	mu        sync.RWMutex
	databases map[int32]*tagdb.Database
	nextID    int32
	Logger    Logger

	// Config is applied to every Database this Registry creates.
	Config config.EngineConfig
}

// New returns an empty Registry using the default EngineConfig cutoffs.
func New() *Registry {
	return &Registry{
		databases: make(map[int32]*tagdb.Database),
		Logger:    nullLogger{},
		Config:    config.Default(),
	}
}

// Create allocates a fresh, empty Database under name and returns its
// handle. Handles are assigned from a monotonically increasing counter that
// is never decreased or reused, even after Release.
func (r *Registry) Create(name string) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := r.nextID
	r.nextID++
	db := tagdb.New(name)
	db.Logger = r.Logger
	db.InitialCutoff = r.Config.InitialCutoff
	db.FinalCutoff = r.Config.FinalCutoff
	db.MaxWordLen = r.Config.MaxWordLen
	r.databases[handle] = db
	r.Logger.Printf("registry: create handle=%d name=%q", handle, name)
	return handle
}

// Get returns the Database for handle. An unknown handle is a programmer
// error and panics with *UnknownHandleError, per the engine's fail-fast
// contract for this case.
func (r *Registry) Get(handle int32) *tagdb.Database {
	r.mu.RLock()
	defer r.mu.RUnlock()

	db, ok := r.databases[handle]
	if !ok {
		panic(&UnknownHandleError{Handle: handle})
	}
	return db
}

// Release destroys the Database at handle. A subsequent Get on the same
// handle panics. nextID is not decreased, so a later Create always returns a
// strictly greater handle than any previously released one.
func (r *Registry) Release(handle int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.databases[handle]; !ok {
		panic(&UnknownHandleError{Handle: handle})
	}
	delete(r.databases, handle)
	r.Logger.Printf("registry: release handle=%d", handle)
}

// Dump lists every live database as "name=handle", sorted by name (then by
// handle for databases sharing a name) rather than by Go's randomized map
// order, so a debug listing is stable from one call to the next.
func (r *Registry) Dump() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string][]int32, len(r.databases))
	for handle, db := range r.databases {
		byName[db.Name] = append(byName[db.Name], handle)
	}

	out := make([]string, 0, len(r.databases))
	util.CanonicalMapIter(byName)(func(name string, handles []int32) bool {
		sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
		for _, handle := range handles {
			out = append(out, fmt.Sprintf("%s=%d", name, handle))
		}
		return true
	})
	return out
}
