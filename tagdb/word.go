// Package tagdb implements the per-database tag dictionary: bulk CSV
// loading into an interning arena, and the two-stage subsequence-filter /
// gap-match-rerank search over it.
package tagdb

const (
	// MaxWordLen bounds both the raw word/redirect byte length and the
	// operands GapMatch will DP over; rows whose raw word or redirect exceeds
	// it are dropped at load, and over-length GapMatch operands are rejected
	// as gapInf. The normalized key itself is not checked at load.
	MaxWordLen = 64

	// InitialCutoff bounds how many subsequence matches stage 1 collects
	// before it stops scanning words, regardless of how many more would
	// match further down the dictionary.
	InitialCutoff = 1600

	// FinalCutoff bounds how many reranked results Search returns.
	FinalCutoff = 256

	// canonicalRedirect is the literal redirect value marking an entry as
	// canonical (not an alias of another entry).
	canonicalRedirect = "null"
)

// Word is one dictionary entry. Its string fields are views into the owning
// Database's arena and remain valid for the Database's lifetime — until the
// next Load or a Release of the Database.
type Word struct {
	Normalized string
	Shortened  string
	Word       string
	Redirect   string
	Freq       int64
	Category   int
	Priority   int
}

// indexed pairs a Word with the UTF-16 code-unit views of its normalized and
// shortened keys, precomputed at load time so Search doesn't re-decode UTF-8
// on every candidate during the subsequence scan and gap-match rerank.
type indexed struct {
	word            Word
	normalizedUnits []uint16
	shortenedUnits  []uint16
}
