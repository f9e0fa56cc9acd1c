// Package hostapi is the collapsed host shim: the single marshalling layer
// the engine exposes to a native add-on or JVM host: the repository's three
// near-duplicate host-shim variants collapse into this one. It
// holds no decision logic — every call forwards directly into registry and
// tagdb — matching the Node/JVM originals (SDSAddOn::*,
// Java_io_sunho_SDStudio_SDSNative_*), which are pure marshalling wrappers
// around a DatabaseRepository.
package hostapi

import (
	"strings"

	"github.com/sunho/sdsearch/registry"
	"github.com/sunho/sdsearch/tagdb"
	"github.com/sunho/sdsearch/util"
)

// WordRecord is the boundary shape of one search result: every field is a
// copy, so no lifetime escapes the call (a view into the owning Database's
// arena never crosses this boundary).
type WordRecord struct {
	Normalized string
	Shortened  string
	Word       string
	Redirect   string
	Freq       int64
	Priority   int32
	Category   int32
}

// Host wraps a *registry.Registry with the four operations a native add-on
// or JVM binding marshals across its own FFI boundary.
type Host struct {
	registry *registry.Registry
}

// NewHost returns a Host backed by a fresh Registry.
func NewHost() *Host {
	return &Host{registry: registry.New()}
}

// CreateDB allocates a new named database and returns its handle.
func (h *Host) CreateDB(name string) int32 {
	return h.registry.Create(name)
}

// LoadDB bulk-replaces handle's contents from csvData.
func (h *Host) LoadDB(handle int32, csvData string) {
	h.registry.Get(handle).Load(csvData)
}

// Search returns handle's ranked matches for query, copied out as
// WordRecords.
func (h *Host) Search(handle int32, query string) []WordRecord {
	words := h.registry.Get(handle).Search(query)
	return toRecords(words)
}

// ReleaseDB destroys handle.
func (h *Host) ReleaseDB(handle int32) {
	h.registry.Release(handle)
}

func toRecords(words []tagdb.Word) []WordRecord {
	return util.TransformSlice(words, func(w tagdb.Word) WordRecord {
		return WordRecord{
			Normalized: strings.Clone(w.Normalized),
			Shortened:  strings.Clone(w.Shortened),
			Word:       strings.Clone(w.Word),
			Redirect:   strings.Clone(w.Redirect),
			Freq:       w.Freq,
			Priority:   int32(w.Priority),
			Category:   int32(w.Category),
		}
	})
}
