package tagdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunho/sdsearch/codec"
	"github.com/sunho/sdsearch/normalize"
)

func wordSurfaces(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}

func TestSearchLatinSubsequenceAndScoring(t *testing.T) {
	db := New("test")
	db.Load("cat,0,100,null\ncatalog,0,50,null\ndog,0,200,null\n")

	got := wordSurfaces(db.Search("ct"))
	assert.Equal(t, []string{"cat", "catalog"}, got)
}

func TestSearchCaseFolding(t *testing.T) {
	db := New("test")
	db.Load("cat,0,100,null\ncatalog,0,50,null\ndog,0,200,null\n")

	lower := wordSurfaces(db.Search("cat"))
	upper := wordSurfaces(db.Search("CAT"))
	assert.Equal(t, lower, upper)
}

func TestSearchRedirectDedup(t *testing.T) {
	db := New("test")
	db.Load("nekocat,0,10,cat\ncat,0,100,null\n")

	got := wordSurfaces(db.Search("c"))
	assert.Contains(t, got, "cat")
	assert.NotContains(t, got, "nekocat")
}

func TestSearchChosungShortened(t *testing.T) {
	db := New("test")
	db.Load("강아지,0,1,null\n")

	words := db.Search(normalize.Shorten("강아지"))
	assert.Equal(t, "ㄱㅇㅈ", words[0].Shortened)

	found := db.Search("ㄱㅇㅈ")
	assert.Len(t, found, 1)
	assert.Equal(t, "강아지", found[0].Word)
}

func TestSearchCutoffBounds(t *testing.T) {
	db := New("test")
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&b, "catfish%d,0,%d,null\n", i, i)
	}
	db.Load(b.String())

	results := db.Search("cat")
	assert.Len(t, results, FinalCutoff)
	for _, w := range results {
		// every result must have come from inside the first InitialCutoff
		// rows, since stage 1 stops scanning once it reaches that many
		// survivors and every row here matches.
		var idx int
		fmt.Sscanf(w.Word, "catfish%d", &idx)
		assert.Less(t, idx, InitialCutoff)
	}
}

func TestSearchRowLengthDrop(t *testing.T) {
	longWord := strings.Repeat("a", 65)
	db := New("test")
	db.Load(longWord + ",0,1,null\nshort,0,1,null\n")

	assert.Len(t, db.words, 1)
	assert.Equal(t, "short", db.words[0].word.Word)
}

func TestSearchResultsAreSubsequenceOfNormalized(t *testing.T) {
	db := New("test")
	db.Load("catalog,0,50,null\ncatfish,0,10,null\ndog,0,200,null\n")

	q := normalize.Normalize("ca")
	for _, w := range db.Search("ca") {
		assert.True(t, isSubsequence(codec.UTF16Units(q), codec.UTF16Units(w.Normalized)))
	}
}

func TestSearchEmptyDatabase(t *testing.T) {
	db := New("empty")
	assert.Empty(t, db.Search("anything"))
}

func TestLoadResetsPreviousContents(t *testing.T) {
	db := New("test")
	db.Load("cat,0,1,null\n")
	assert.Len(t, db.words, 1)

	db.Load("dog,0,1,null\n")
	assert.Len(t, db.words, 1)
	assert.Equal(t, "dog", db.words[0].word.Word)
}
