package tagdb

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sunho/sdsearch/arena"
	"github.com/sunho/sdsearch/codec"
	"github.com/sunho/sdsearch/normalize"
)

// Logger is the minimal instrumentation hook a Database accepts. Both
// logging.StdoutLogger and logging.NullLogger satisfy it structurally.
type Logger interface {
	Printf(format string, v ...any)
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...any) {}

// Database is a named, bulk-loaded tag dictionary. It is not safe for
// concurrent Load/Search calls against the same instance; distinct
// Databases may be used from distinct goroutines freely.
type Database struct {
	Name   string
	arena  *arena.Arena
	words  []indexed
	Logger Logger

	// InitialCutoff, FinalCutoff, and MaxWordLen default to the engine's
	// compiled-in constants but may be overridden per Database (see
	// config.EngineConfig) to tune memory/latency per deployment.
	InitialCutoff int
	FinalCutoff   int
	MaxWordLen    int
}

// New returns an empty, named Database with the engine's default cutoffs.
func New(name string) *Database {
	return &Database{
		Name:          name,
		arena:         arena.New(),
		Logger:        nullLogger{},
		InitialCutoff: InitialCutoff,
		FinalCutoff:   FinalCutoff,
		MaxWordLen:    MaxWordLen,
	}
}

// Load replaces the Database's contents from csv, a newline-separated
// sequence of `word,category,freq,redirect` rows. It atomically discards the
// previous arena and word list — any Word view obtained before this call
// becomes invalid.
func (d *Database) Load(csv string) {
	start := time.Now()
	d.arena.Clear()
	d.words = d.words[:0]

	lines := strings.Split(csv, "\n")
	dropped := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		w, ok := parseRow(line)
		if !ok {
			dropped++
			continue
		}
		if len(w.rawWord) > d.MaxWordLen || len(w.rawRedirect) > d.MaxWordLen {
			dropped++
			continue
		}
		d.append(w)
	}

	d.log("load db=%q rows=%d dropped=%d elapsed=%s", d.Name, len(d.words), dropped, time.Since(start))
}

type parsedRow struct {
	rawWord     string
	category    int
	freq        int64
	rawRedirect string
}

// parseRow splits one CSV line into its four fields. A line with fewer than
// four fields is dropped (ok=false); everything after the third comma,
// further commas included, becomes the redirect. Unparseable integers default to zero
// rather than dropping the row, per the engine's tolerant parse policy.
func parseRow(line string) (parsedRow, bool) {
	parts := strings.SplitN(line, ",", 4)
	if len(parts) != 4 {
		return parsedRow{}, false
	}
	category, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	freq, _ := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	return parsedRow{
		rawWord:     parts[0],
		category:    category,
		freq:        freq,
		rawRedirect: parts[3],
	}, true
}

func (d *Database) append(row parsedRow) {
	normalized := normalize.Normalize(row.rawWord)
	shortened := normalize.Shorten(row.rawWord)

	w := Word{
		Normalized: d.arena.Intern(normalized),
		Shortened:  d.arena.Intern(shortened),
		Word:       d.arena.Intern(row.rawWord),
		Redirect:   d.arena.Intern(row.rawRedirect),
		Freq:       row.freq,
		Category:   row.category,
		Priority:   0,
	}
	d.words = append(d.words, indexed{
		word:            w,
		normalizedUnits: codec.UTF16Units(w.Normalized),
		shortenedUnits:  codec.UTF16Units(w.Shortened),
	})
}

// Search normalizes query and returns the best-ranked matches: a subsequence
// filter bounded by InitialCutoff, a redirect-aware dedup pass, and a
// gap-match rerank bounded by FinalCutoff.
func (d *Database) Search(query string) []Word {
	start := time.Now()
	q := codec.UTF16Units(normalize.Normalize(query))

	var survivors []indexed
	canonicalSeen := make(map[string]struct{})
	for i := range d.words {
		e := &d.words[i]
		if !isSubsequence(q, e.normalizedUnits) {
			continue
		}
		survivors = append(survivors, *e)
		if e.word.Redirect == canonicalRedirect {
			canonicalSeen[e.word.Word] = struct{}{}
		}
		if len(survivors) >= d.InitialCutoff {
			break
		}
	}

	filtered := make([]indexed, 0, len(survivors))
	for _, e := range survivors {
		if e.word.Redirect == canonicalRedirect {
			filtered = append(filtered, e)
			continue
		}
		if _, seen := canonicalSeen[e.word.Redirect]; !seen {
			filtered = append(filtered, e)
		}
	}

	type scored struct {
		entry indexed
		key   [4]int64
	}
	ranked := make([]scored, len(filtered))
	for i, e := range filtered {
		ranked[i] = scored{
			entry: e,
			key: [4]int64{
				int64(gapMatch(q, e.shortenedUnits, d.MaxWordLen)),
				int64(gapMatch(q, e.normalizedUnits, d.MaxWordLen)),
				int64(-e.word.Priority),
				-e.word.Freq,
			},
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return less4(ranked[i].key, ranked[j].key)
	})

	n := len(ranked)
	if n > d.FinalCutoff {
		n = d.FinalCutoff
	}
	result := make([]Word, n)
	for i := 0; i < n; i++ {
		result[i] = ranked[i].entry.word
	}

	d.log("search db=%q query=%q survivors=%d results=%d elapsed=%s", d.Name, query, len(survivors), len(result), time.Since(start))
	return result
}

func less4(a, b [4]int64) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func isSubsequence(small, large []uint16) bool {
	i := 0
	for j := 0; i < len(small) && j < len(large); j++ {
		if small[i] == large[j] {
			i++
		}
	}
	return i == len(small)
}

func (d *Database) log(format string, v ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, v...)
	}
}
