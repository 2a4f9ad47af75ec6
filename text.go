package enrzones

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	spacesRe     = regexp.MustCompile(` +`)
	blankLinesRe = regexp.MustCompile(`(\n ?)+`)
	nonWordRe    = regexp.MustCompile(`\W`)
)

var quoteReplacer = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'",
	"\u201c", `"`, "\u201d", `"`,
	"\u00ad", "",
	"\r\n", "\n", "\r", "\n",
	"\t", " ",
)

// Cleanup folds compatibility characters (non-breaking spaces, ligatures),
// straightens typographic quotes, unifies line endings, and trims.
func Cleanup(s string) string {
	return strings.TrimSpace(quoteReplacer.Replace(norm.NFKC.String(s)))
}

// Squish cleans up s and collapses every whitespace run, newlines
// included, into a single space.
func Squish(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(Cleanup(s), " "))
}

// CompactLines cleans up s, collapses runs of spaces, and collapses runs
// of line breaks into single newlines.
func CompactLines(s string) string {
	s = spacesRe.ReplaceAllString(Cleanup(s), " ")
	s = blankLinesRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// StripNonWord removes every character outside [0-9A-Za-z_].
func StripNonWord(s string) string {
	return nonWordRe.ReplaceAllString(s, "")
}

// FootnoteStripper removes duplicated footnote back-references such as
// "(3)(3)" that eAIP documents repeat inline.
type FootnoteStripper struct {
	re *regexp.Regexp
}

// NewFootnoteStripper compiles pattern, which must capture the two
// footnote numbers as its first two groups. A match is removed only when
// both numbers are equal.
func NewFootnoteStripper(pattern string) (*FootnoteStripper, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, Errorf(ECONFIG, "invalid footnote pattern: %v", err)
	}
	if re.NumSubexp() < 2 {
		return nil, Errorf(ECONFIG, "footnote pattern must capture two groups")
	}
	return &FootnoteStripper{re: re}, nil
}

// Strip returns s with every matching back-reference removed. When the
// two numbers differ, only the first reference is kept and the scan
// resumes after its number, so "(1)(2)(2)" loses the duplicated "(2)".
func (f *FootnoteStripper) Strip(s string) string {
	var b strings.Builder
	for s != "" {
		m := f.re.FindStringSubmatchIndex(s)
		if m == nil {
			break
		}
		if m[2] >= 0 && m[4] >= 0 && s[m[2]:m[3]] == s[m[4]:m[5]] && m[1] > m[0] {
			b.WriteString(s[:m[0]])
			s = s[m[1]:]
			continue
		}
		next := min(max(m[3], m[0]+1), len(s))
		b.WriteString(s[:next])
		s = s[next:]
	}
	b.WriteString(s)
	return b.String()
}
