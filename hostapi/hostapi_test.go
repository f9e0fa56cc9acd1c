package hostapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostRoundTrip(t *testing.T) {
	h := NewHost()
	handle := h.CreateDB("tags")
	h.LoadDB(handle, "cat,0,100,null\ncatalog,0,50,null\ndog,0,200,null\n")

	results := h.Search(handle, "ct")
	assert.Len(t, results, 2)
	assert.Equal(t, "cat", results[0].Word)
	assert.Equal(t, "catalog", results[1].Word)

	h.ReleaseDB(handle)
	assert.Panics(t, func() { h.Search(handle, "ct") })
}

func TestHostHandlesAreIndependent(t *testing.T) {
	h := NewHost()
	a := h.CreateDB("a")
	b := h.CreateDB("b")
	h.LoadDB(a, "cat,0,1,null\n")
	h.LoadDB(b, "dog,0,1,null\n")

	assert.Len(t, h.Search(a, "cat"), 1)
	assert.Empty(t, h.Search(b, "cat"))
}
