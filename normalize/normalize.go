// Package normalize implements the engine's text normalization pipeline:
// Latin case folding, Hangul syllable decomposition into Jamo, and the
// Chosung/acronym "shortened" key used for abbreviation-style queries.
package normalize

import (
	"strings"

	"github.com/sunho/sdsearch/codec"
)

// jamoNormalize maps a single codepoint through the Leading/Medial/Trailing
// Jamo -> Compatibility Jamo tables (including their archaic exceptions),
// then decomposes the result if it is a complex Compatibility Jamo. Any
// codepoint outside those ranges skips the table step unchanged and is then
// decomposed the same way if it is itself a complex Compatibility Jamo. The
// result is appended to dst as UTF-8 and returned.
func jamoNormalize(dst []byte, cp rune) []byte {
	if mapped, ok := mapJamo(cp); ok {
		cp = mapped
	}
	if pair, isComplex := complexJamo[cp]; isComplex {
		dst = codec.EncodeRune(dst, pair[0])
		dst = codec.EncodeRune(dst, pair[1])
		return dst
	}
	return codec.EncodeRune(dst, cp)
}

func mapJamo(cp rune) (rune, bool) {
	switch cp {
	case leadingExc1:
		return leadingExc1To, true
	case leadingExc2:
		return leadingExc2To, true
	case leadingExc3:
		return leadingExc3To, true
	case medialExc1:
		return medialExc1To, true
	case trailingExc1:
		return trailingExc1To, true
	case trailingExc2:
		return trailingExc2To, true
	case trailingExc3:
		return trailingExc3To, true
	}
	switch {
	case cp >= leadingJamoBase && cp < leadingJamoBase+leadingJamoCount:
		return leadingJamo[cp-leadingJamoBase], true
	case cp >= medialJamoBase && cp < medialJamoBase+medialJamoCount:
		return medialJamo[cp-medialJamoBase], true
	case cp >= trailingJamoBase && cp < trailingJamoBase+trailingJamoCount:
		return trailingJamo[cp-trailingJamoBase], true
	}
	return 0, false
}

// decomposeHangul splits a precomposed Hangul syllable codepoint into its
// Chosung/Jungseong/optional-Jongseong Jamo codepoints (in the Leading/
// Medial/Trailing Jamo block, not yet passed through jamoNormalize).
func decomposeHangul(cp rune) (lead, medial, trail rune, hasTrail bool) {
	offset := cp - hangulSyllableBase
	initial := offset / (medialJamoCount * trailingJamoCount1plus)
	rest := offset % (medialJamoCount * trailingJamoCount1plus)
	med := rest / trailingJamoCount1plus
	final := rest % trailingJamoCount1plus
	lead = leadingJamoBase + initial
	medial = medialJamoBase + med
	if final == 0 {
		return lead, medial, 0, false
	}
	trail = trailingJamoBase + (final - 1)
	return lead, medial, trail, true
}

// trailingJamoCount1plus is 28: the Jongseong slot count including "no
// trailing consonant" (final == 0).
const trailingJamoCount1plus = trailingJamoCount + 1

func isHangulSyllable(cp rune) bool {
	return cp >= hangulSyllableBase && cp <= hangulSyllableMax
}

// Normalize produces the canonical search key for s: ASCII letters are
// lowercased, ASCII letters/digits pass through, Hangul syllables are
// decomposed into Jamo and normalized through the Compatibility Jamo tables,
// and every other codepoint is passed through the same Jamo normalizer
// (a no-op for non-Jamo codepoints).
func Normalize(s string) string {
	cps := codec.Codepoints(s)
	out := make([]byte, 0, len(cps)*2)
	for _, cp := range cps {
		switch {
		case cp >= 'A' && cp <= 'Z':
			out = append(out, byte(cp-'A'+'a'))
		case (cp >= 'a' && cp <= 'z') || (cp >= '0' && cp <= '9'):
			out = append(out, byte(cp))
		case isHangulSyllable(cp):
			lead, medial, trail, hasTrail := decomposeHangul(cp)
			out = jamoNormalize(out, lead)
			out = jamoNormalize(out, medial)
			if hasTrail {
				out = jamoNormalize(out, trail)
			}
		default:
			out = jamoNormalize(out, cp)
		}
	}
	return string(out)
}

// Shorten produces the acronym-like alternate key: the Chosung of each
// Hangul syllable in s if s contains any; otherwise, for each
// whitespace-separated run in s, the run's first character followed by a
// space when that character is a lowercase ASCII letter. A run that starts
// with any other character contributes nothing.
func Shorten(s string) string {
	cps := codec.Codepoints(s)

	hasHangul := false
	for _, cp := range cps {
		if isHangulSyllable(cp) {
			hasHangul = true
			break
		}
	}

	if hasHangul {
		out := make([]byte, 0, len(cps)*2)
		for _, cp := range cps {
			if !isHangulSyllable(cp) {
				continue
			}
			offset := cp - hangulSyllableBase
			initial := offset / (medialJamoCount * trailingJamoCount1plus)
			out = jamoNormalize(out, leadingJamoBase+initial)
		}
		return string(out)
	}

	var b strings.Builder
	decided := false // whether this run's fate (emit or not) has already been settled
	for _, cp := range cps {
		if isWhitespace(cp) {
			decided = false
			continue
		}
		if decided {
			continue
		}
		decided = true
		if cp >= 'a' && cp <= 'z' {
			b.WriteRune(cp)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isWhitespace(cp rune) bool {
	return cp == ' ' || cp == '\t' || cp == '\n' || cp == '\r'
}
