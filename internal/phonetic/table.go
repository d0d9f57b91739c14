package phonetic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Separator joins single-key values in a PM spelling produced by the
// Pinyin to PM conversion.
const Separator = "-"

// ErrUnknownValue is returned when a piece of a PM spelling has no key.
var ErrUnknownValue = errors.New("no key for value")

func sub(text string) Mark       { return Mark{Text: text} }
func subBefore(text string) Mark { return Mark{Text: text, Before: true} }
func sup(text string) Mark       { return Mark{Text: text, Sup: true} }

func entry(key Key, group Group, primary string, plain string, marks ...Mark) Entry {
	return Entry{
		Key:      key,
		Group:    group,
		Display:  Display{Primary: primary, Marks: marks},
		Plain:    plain,
		HasPlain: plain != "",
	}
}

var entries = []Entry{
	entry("b", GroupBlue, "b", "b"),
	entry("v", GroupBlue, "p", "p", subBefore("m")),
	entry("c", GroupBlue, "f", "f", subBefore("zh"), sub("m")),
	entry("x", GroupBlue, "z", "z", sub("zh")),
	entry("t", GroupBlue, "d", "d"),
	entry("r", GroupBlue, "t", "t", subBefore("n")),
	entry("e", GroupBlue, "l", "l", subBefore("ch"), sub("n")),
	entry("w", GroupBlue, "c", "c", sub("ch")),
	entry("g", GroupBlue, "g", "g", sup("j")),
	entry("f", GroupBlue, "k", "k", subBefore("r"), sup("q")),
	entry("d", GroupBlue, "h", "h", subBefore("sh"), sup("x"), sub("r")),
	entry("s", GroupBlue, "s", "s", sub("sh")),

	entry("y", GroupGreen, "ue", "ue"),
	entry("h", GroupGreen, "ua", "ua"),
	entry("n", GroupGreen, "uo", "uo"),
	entry("u", GroupGreen, "e", "e"),
	entry("j", GroupGreen, "a", "a"),
	entry("m", GroupGreen, "u", "u"),
	entry("i", GroupGreen, "i", "i", sub("ou")),
	entry("o", GroupGreen, "o", "o", subBefore("ou")),
	entry("p", GroupGreen, "er", "er"),
	entry("k", GroupGreen, "n", "n"),
	entry("l", GroupGreen, "g", "g'"),

	entry("q", GroupYellow, "-", ""),
	entry("a", GroupYellow, "-", ""),
	entry("z", GroupYellow, "-", ""),
	entry(KeySemicolon, GroupYellow, ";", ""),
	// Yellow, but comma and period abbreviate n and g' so they keep plain values.
	entry(KeyComma, GroupYellow, ",", ","),
	entry(KeyPeriod, GroupYellow, ".", "."),
	entry(KeySlash, GroupYellow, "/", ""),

	entry(KeySpace, GroupRed, "y", "y"),
}

var canonicalOrder = []Key{
	"s", "w", "x", "g", "t", "b", "f", "r", "v", "d", "e", "c",
	KeySpace,
	"h", "y", "n", "m", "j", "u", "i", "o", "k",
	KeyComma, "l", KeyPeriod, "p",
}

var (
	byKey   = lo.KeyBy(entries, func(e Entry) Key { return e.Key })
	byPlain = lo.SliceToMap(
		lo.Filter(entries, func(e Entry, _ int) bool { return e.HasPlain }),
		func(e Entry) (string, Key) { return e.Plain, e.Key },
	)
	position = indexOrder(canonicalOrder)
)

func indexOrder(order []Key) map[Key]int {
	m := make(map[Key]int, len(order))
	for i, k := range order {
		m[k] = i
	}
	return m
}

// Lookup returns the table entry of a key.
func Lookup(key Key) (Entry, bool) {
	e, ok := byKey[key]
	return e, ok
}

// DisplayFragment returns how a key is drawn. ok is false for keys outside
// the table.
func DisplayFragment(key Key) (Display, bool) {
	e, ok := byKey[key]
	if !ok {
		return Display{}, false
	}
	return e.Display, true
}

// PlainValue returns the transliteration letters of a key.
func PlainValue(key Key) (string, bool) {
	e, ok := byKey[key]
	if !ok || !e.HasPlain {
		return "", false
	}
	return e.Plain, true
}

// KeyOf returns the key whose plain value is value.
func KeyOf(value string) (Key, bool) {
	k, ok := byPlain[value]
	return k, ok
}

// CanonicalOrder returns the fixed left-to-right key order used to linearize
// a chord. The returned slice is a copy.
func CanonicalOrder() []Key {
	return slices.Clone(canonicalOrder)
}

// Groups returns the key groups in display order.
func Groups() []Group {
	return []Group{GroupBlue, GroupGreen, GroupYellow, GroupRed}
}

// Keys returns the entries of a group in table order.
func Keys(group Group) []Entry {
	return lo.Filter(entries, func(e Entry, _ int) bool { return e.Group == group })
}

// Token linearizes a chord into a PM token. Keys are deduplicated and
// sorted by canonical order; keys without a plain value or outside the
// order contribute nothing.
func Token(keys []Key) string {
	ordered := lo.Filter(lo.Uniq(keys), func(k Key, _ int) bool {
		_, ok := position[k]
		return ok
	})
	slices.SortStableFunc(ordered, func(a, b Key) int {
		return position[a] - position[b]
	})

	var b strings.Builder
	for _, k := range ordered {
		if v, ok := PlainValue(k); ok {
			b.WriteString(v)
		}
	}
	return b.String()
}

// Resolve maps a separator-joined PM spelling back to the keys that produce
// it, in canonical order.
func Resolve(pm string) ([]Key, error) {
	if pm == "" {
		return nil, nil
	}

	parts := strings.Split(pm, Separator)
	keys := make([]Key, 0, len(parts))
	for _, part := range parts {
		k, ok := KeyOf(part)
		if !ok {
			return nil, fmt.Errorf("resolving %q: %w: %q", pm, ErrUnknownValue, part)
		}
		keys = append(keys, k)
	}

	keys = lo.Uniq(keys)
	slices.SortStableFunc(keys, func(a, b Key) int {
		return position[a] - position[b]
	})
	return keys, nil
}
