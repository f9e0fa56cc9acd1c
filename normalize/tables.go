package normalize

// Unicode ranges and table sizes for Hangul syllable decomposition, per the
// standard algorithm: a precomposed syllable decomposes into a leading
// (Chosung), medial (Jungseong), and optional trailing (Jongseong) Jamo.
const (
	hangulSyllableBase = 0xAC00
	hangulSyllableMax  = 0xD7A3

	leadingJamoBase  = 0x1100
	medialJamoBase   = 0x1161
	trailingJamoBase = 0x11A8 // trailing index 0 == final consonant slot 1 (final 0 means "no trailing")

	leadingJamoCount  = 19
	medialJamoCount   = 21
	trailingJamoCount = 27
)

// leadingJamo maps a Chosung index (0..18, i.e. Leading Jamo codepoint minus
// leadingJamoBase) to its Compatibility Jamo codepoint.
var leadingJamo = [leadingJamoCount]rune{
	0x3131, 0x3132, 0x3134, 0x3137, 0x3138, 0x3139, 0x3141, 0x3142, 0x3143,
	0x3145, 0x3146, 0x3147, 0x3148, 0x3149, 0x314A, 0x314B, 0x314C, 0x314D, 0x314E,
}

// medialJamo maps a Jungseong index (0..20) to its Compatibility Jamo codepoint.
var medialJamo = [medialJamoCount]rune{
	0x314F, 0x3150, 0x3151, 0x3152, 0x3153, 0x3154, 0x3155, 0x3156, 0x3157,
	0x3158, 0x3159, 0x315A, 0x315B, 0x315C, 0x315D, 0x315E, 0x315F, 0x3160,
	0x3161, 0x3162, 0x3163,
}

// trailingJamo maps a Jongseong index (0..26, i.e. final-1) to its
// Compatibility Jamo codepoint. Final == 0 means "no trailing Jamo" and never
// indexes this table.
var trailingJamo = [trailingJamoCount]rune{
	0x3131, 0x3132, 0x3133, 0x3134, 0x3135, 0x3136, 0x3137, 0x3139, 0x313A,
	0x313B, 0x313C, 0x313D, 0x313E, 0x313F, 0x3140, 0x3141, 0x3142, 0x3144,
	0x3145, 0x3146, 0x3147, 0x3148, 0x314A, 0x314B, 0x314C, 0x314D, 0x314E,
}

// Archaic-Hangul escape hatches: these codepoints sit outside the contiguous
// Leading/Medial/Trailing Jamo ranges above but still need a Compatibility
// Jamo mapping. They are rarely exercised but required for parity with the
// source engine.
const (
	leadingExc1, leadingExc1To = 0x1140, 0x317F
	leadingExc2, leadingExc2To = 0x114C, 0x3181
	leadingExc3, leadingExc3To = 0x1159, 0x3186

	medialExc1, medialExc1To = 0x119E, 0x318D

	trailingExc1, trailingExc1To = 0x11EB, 0x317F
	trailingExc2, trailingExc2To = 0x11F0, 0x3181
	trailingExc3, trailingExc3To = 0x11F9, 0x3186
)

// complexJamo decomposes a single Compatibility Jamo that visually combines
// two simpler ones into its constituent pair, in emission order.
var complexJamo = map[rune][2]rune{
	0x3158: {0x3157, 0x314F}, // ㅘ -> ㅗㅏ
	0x3159: {0x3157, 0x3150}, // ㅙ -> ㅗㅐ
	0x315A: {0x3157, 0x3163}, // ㅚ -> ㅗㅣ
	0x315D: {0x315C, 0x3153}, // ㅝ -> ㅜㅓ
	0x315E: {0x315C, 0x3154}, // ㅞ -> ㅜㅔ
	0x315F: {0x315C, 0x3163}, // ㅟ -> ㅜㅣ
	0x3162: {0x3161, 0x3163}, // ㅢ -> ㅡㅣ
	0x3133: {0x3131, 0x3145}, // ㄳ -> ㄱㅅ
	0x3135: {0x3134, 0x3148}, // ㄵ -> ㄴㅈ
	0x3136: {0x3134, 0x314E}, // ㄶ -> ㄴㅎ
	0x313A: {0x3139, 0x3131}, // ㄺ -> ㄹㄱ
	0x313B: {0x3139, 0x3141}, // ㄻ -> ㄹㅁ
	0x313C: {0x3139, 0x3142}, // ㄼ -> ㄹㅂ
	0x313D: {0x3139, 0x3145}, // ㄽ -> ㄹㅅ
	0x313E: {0x3139, 0x314C}, // ㄾ -> ㄹㅌ
	0x313F: {0x3139, 0x314D}, // ㄿ -> ㄹㅍ
	0x3140: {0x3139, 0x314E}, // ㅀ -> ㄹㅎ
	0x3144: {0x3142, 0x3145}, // ㅄ -> ㅂㅅ
	0x3132: {0x3131, 0x3131}, // ㄲ -> ㄱㄱ
	0x3138: {0x3137, 0x3137}, // ㄸ -> ㄷㄷ
	0x3143: {0x3142, 0x3142}, // ㅃ -> ㅂㅂ
	0x3146: {0x3145, 0x3145}, // ㅆ -> ㅅㅅ
	0x3149: {0x3148, 0x3148}, // ㅉ -> ㅈㅈ
}
