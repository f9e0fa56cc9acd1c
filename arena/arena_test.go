package arena

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternRoundTrip(t *testing.T) {
	a := New()
	v := a.Intern("cat")
	assert.Equal(t, "cat", v)
}

func TestInternViewsStableAcrossLaterAppends(t *testing.T) {
	a := New()
	first := a.Intern("cat")
	for i := 0; i < 10000; i++ {
		a.Intern(fmt.Sprintf("word-%d", i))
	}
	assert.Equal(t, "cat", first)
}

func TestInternLargerThanChunkSize(t *testing.T) {
	a := New()
	big := make([]byte, chunkSize+10)
	for i := range big {
		big[i] = 'x'
	}
	v := a.Intern(string(big))
	assert.Equal(t, string(big), v)
	other := a.Intern("small")
	assert.Equal(t, "small", other)
}

func TestClearInvalidatesForReuse(t *testing.T) {
	a := New()
	a.Intern("cat")
	a.Clear()
	assert.Empty(t, a.chunks)
	v := a.Intern("dog")
	assert.Equal(t, "dog", v)
}
