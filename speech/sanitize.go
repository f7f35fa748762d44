package speech

import (
	"regexp"
	"strings"
)

// Markdown patterns, matching the subset of formatting the app feeds
// into narration. Links keep their text, emphasis keeps its content,
// code spans are dropped entirely.
var (
	codeBlockRegex  = regexp.MustCompile("(?s)```[^`]*```|~~~[^~]*~~~")
	inlineCodeRegex = regexp.MustCompile("`([^`]*)`")
	linkRegex       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	strongRegex     = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	emphasisRegex   = regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`)
	headingRegex    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	newlineRegex    = regexp.MustCompile(`\s*\n+\s*`)
	spaceRegex      = regexp.MustCompile(`[ \t]+`)
)

// emojiRanges lists the code-point blocks stripped before synthesis.
// Engines tend to spell emoji out ("grinning face") which is noise in
// narration.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended pictographs
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0xFE00, 0xFE0F},   // variation selectors
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
}

// Sanitize prepares arbitrary application text for narration: emoji
// are removed, markdown markers are stripped (content kept, code
// spans dropped), newlines become sentence breaks, and whitespace is
// collapsed. Idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(text string) string {
	text = codeBlockRegex.ReplaceAllString(text, " ")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1")
	text = strongRegex.ReplaceAllString(text, "$1$2")
	text = emphasisRegex.ReplaceAllString(text, "$1$2")
	text = headingRegex.ReplaceAllString(text, "")
	text = stripEmoji(text)
	text = joinLines(text)
	text = spaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// joinLines turns line breaks into sentence breaks so the engine
// pauses between lines instead of running them together. Lines that
// already end a sentence just get a space.
func joinLines(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range newlineRegex.FindAllStringIndex(text, -1) {
		seg := text[last:loc[0]]
		b.WriteString(seg)
		b.WriteString(lineSeparator(seg))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func lineSeparator(line string) string {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return ""
	}
	// "।" is the Devanagari sentence terminator.
	for _, p := range []string{".", "!", "?", ":", ";", ",", "।"} {
		if strings.HasSuffix(line, p) {
			return " "
		}
	}
	return ". "
}

func stripEmoji(text string) string {
	return strings.Map(func(r rune) rune {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				return -1
			}
		}
		return r
	}, text)
}
