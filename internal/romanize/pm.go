package romanize

// Placeholders for a token that is only a comma or a period. Input is
// lowercase, so they cannot collide with real spellings.
const (
	commaPlaceholder  = "COMMA"
	periodPlaceholder = "PERIOD"
)

// A lone space key, or a lone comma/period, must survive the abbreviation
// rules untouched.
var escapeRules = []Rule{
	sub("escape/space", `^y$`, ""),
	sub("escape/comma", `^,$`, commaPlaceholder),
	sub("escape/period", `^\.$`, periodPlaceholder),
}

// Comma abbreviates n, period abbreviates the g' final marker.
var abbreviationRules = []Rule{
	sub("abbrev/comma", `,`, "n"),
	sub("abbrev/period", `\.`, "g'"),
}

var unescapeRules = []Rule{
	sub("unescape/comma", `^`+commaPlaceholder+`$`, ","),
	sub("unescape/period", `^`+periodPlaceholder+`$`, "."),
}

var finalRules = []Rule{
	sub("final/ng", `[ni]?g'$`, "ng"),
	sub("final/en", `(^|[^aoeiuy])n`, "${1}en"),
}

var vowelRules = []Rule{
	sub("vowel/u-final", `ue?([ni])$`, "u${1}"),
	sub("vowel/ao", `[ae]i?o$`, "ao"),
	sub("vowel/ou", `io$`, "ou"),
}

var initialRules = []Rule{
	sub("initial/m", `^pf`, "m"),
	sub("initial/n", `^tl`, "n"),
	sub("initial/kh", `^kh`, "r"),
	sub("initial/skh", `^skh?`, "r"),
	sub("initial/w", `^zpf?`, "w"),
	sub("initial/zh", `^zf`, "zh"),
	sub("initial/ch", `^cl`, "ch"),
}

var nullFinalRules = []Rule{
	sub("null-final/u", `^([bpfw])$`, "${1}u"),
	sub("null-final/e", `^([mdtnlgkh])$`, "${1}e"),
}

var palatalRules = []Rule{
	sub("bare/strip-i", `^([zcs]h?|r)i$`, "${1}"),
	sub("palatal/y", `yi?`, "i"),
	sub("palatal/j", `^[gz]i`, "ji"),
	sub("palatal/q", `^[kc]i`, "qi"),
	sub("palatal/x", `^[hs]i`, "xi"),
	sub("bare/add-i", `^([zcs]h?|r)$`, "${1}i"),
}

var glideRules = []Rule{
	sub("glide/y", `^i([aoeu])`, "y${1}"),
	sub("glide/yi", `^i`, "yi"),
	sub("glide/w", `^u([aoe])`, "w${1}"),
	sub("glide/wu", `^u`, "wu"),
	sub("rime/uen", `ue([ni])`, "u${1}"),
	sub("rime/wen", `^wu([ni])`, "we${1}"),
	sub("rime/ong", `ung$`, "ong"),
	sub("rime/jqx-u", `^([jqx])iu`, "${1}u"),
	sub("rime/ue", `iue`, "ue"),
	sub("rime/v", `iu`, "v"),
	sub("rime/iu", `iou$`, "iu"),
}

var pmChain = concat(
	escapeRules,
	abbreviationRules,
	unescapeRules,
	finalRules,
	vowelRules,
	initialRules,
	nullFinalRules,
	palatalRules,
	glideRules,
)

// PMToPinyin converts one PM token to its Pinyin spelling. Input that no
// rule recognizes passes through; the result is not validated.
func PMToPinyin(pm string) string {
	return pmChain.Convert(pm)
}

// TracePMToPinyin is PMToPinyin that also returns the rules that fired.
func TracePMToPinyin(pm string) (string, []Step) {
	return pmChain.Trace(pm)
}
