package romanize

import (
	"strings"

	"github.com/f3rmion/pmpy/internal/phonetic"
)

var implicitFinalRules = []Rule{
	sub("implicit/u", `^([bpf])u$`, "${1}"),
	sub("implicit/e", `^([mdtnlgkh])e$`, "${1}"),
	sub("implicit/i", `^([zcs]h?|r)i$`, "${1}"),
}

var nasalRules = []Rule{
	sub("nasal/ng", `^ng$`, "eng"),
	sub("nasal/lue", `^([nl])ue$`, "${1}iue"),
	sub("nasal/lv", `^([nl])v$`, "${1}iu"),
}

var depalatalRules = []Rule{
	sub("depalatal/j", `^ji?`, "gi"),
	sub("depalatal/q", `^qi?`, "ki"),
	sub("depalatal/x", `^xi?`, "hi"),
}

var reverseInitialRules = []Rule{
	sub("initial/zf", `^zh`, "zf"),
	sub("initial/cl", `^ch`, "cl"),
	sub("initial/kh", `^r`, "kh"),
	sub("initial/tl", `^n`, "tl"),
	sub("initial/pf", `^m`, "pf"),
}

var reverseGlideRules = []Rule{
	sub("glide/y", `^yi?`, "i"),
	sub("glide/w", `^wu?`, "u"),
	sub("glide/medial-i", `i(.)`, "y${1}"),
}

var reverseRimeRules = []Rule{
	sub("rime/ung", `ong$`, "ung"),
	sub("rime/io", `ou$`, "io"),
	sub("rime/uei", `ui$`, "uei"),
	sub("rime/n", `en`, "n"),
}

// splitKeys puts the separator between every character, one per key press.
var splitKeys = Rule{
	Name: "split",
	apply: func(s string) string {
		return strings.Join(strings.Split(s, ""), phonetic.Separator)
	},
}

var fuseRules = []Rule{
	sub("fuse/u", `u`+phonetic.Separator+`([aoe])`, "u${1}"),
	sub("fuse/er", `^e`+phonetic.Separator+`r$`, "er"),
	sub("fuse/g", `(.)g$`, "${1}g'"),
}

var pinyinChain = concat(
	implicitFinalRules,
	nasalRules,
	depalatalRules,
	reverseInitialRules,
	reverseGlideRules,
	reverseRimeRules,
	[]Rule{splitKeys},
	fuseRules,
)

// PinyinToPM converts one Pinyin syllable to a PM spelling: the plain values
// of the keys to press, joined by phonetic.Separator. It is not an exact
// inverse of PMToPinyin.
func PinyinToPM(py string) string {
	return pinyinChain.Convert(py)
}

// TracePinyinToPM is PinyinToPM that also returns the rules that fired.
func TracePinyinToPM(py string) (string, []Step) {
	return pinyinChain.Trace(py)
}
