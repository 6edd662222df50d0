package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes colour and hyperlink escapes.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns terminal display width (wcwidth-based), ignoring escapes.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	for _, seg := range graphemes(StripANSI(s)) {
		width += runewidth.StringWidth(seg)
	}
	return width
}

// TruncateByWidth は表示幅 w に収まるよう末尾を切り詰めます。書記素クラスタは分割しません。
// 切り詰めが発生し ellipsis が収まる場合は末尾に付加します。
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	segs := graphemes(StripANSI(s))
	return fitSegments(segs, w, ellipsis, false)
}

// TruncateLeft keeps the end of s, which is the informative part of a file
// path, and prefixes ellipsis when something was dropped.
func TruncateLeft(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	segs := graphemes(StripANSI(s))
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return fitSegments(segs, w, ellipsis, true)
}

// fitSegments takes segments in order until w is reached. When reversed the
// segments run from the end of the string and the result is flipped back.
func fitSegments(segs []string, w int, ellipsis string, reversed bool) string {
	ellW := runewidth.StringWidth(ellipsis)
	if ellW > w {
		ellipsis, ellW = "", 0
	}
	budget := w - ellW
	kept := make([]string, 0, len(segs))
	used := 0
	for _, seg := range segs {
		segW := runewidth.StringWidth(seg)
		if used+segW > budget {
			break
		}
		kept = append(kept, seg)
		used += segW
	}
	var b strings.Builder
	if reversed {
		b.WriteString(ellipsis)
		for i := len(kept) - 1; i >= 0; i-- {
			b.WriteString(kept[i])
		}
		return b.String()
	}
	for _, seg := range kept {
		b.WriteString(seg)
	}
	b.WriteString(ellipsis)
	return b.String()
}

func graphemes(s string) []string {
	g := uniseg.NewGraphemes(s)
	out := make([]string, 0, len(s))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// PadRight pads s on the right with spaces so that the visible width equals w.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft pads s on the left with spaces so that the visible width equals w.
func PadLeft(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
