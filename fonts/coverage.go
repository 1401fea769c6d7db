package fonts

import (
	"unicode"

	"github.com/go-text/typesetting/language"
)

// coverageResult describes what probing a font against the outstanding
// uncovered scripts and characters achieved.
type coverageResult int

const (
	// coverageIncomplete: the font covered nothing new.
	coverageIncomplete coverageResult = iota
	// coverageImproved: the font covered some, but not all, of what was
	// outstanding.
	coverageImproved
	// coverageComplete: nothing is outstanding anymore.
	coverageComplete
)

// glyphCoverage memoizes, per face, which scripts and which individual
// characters the face covers. Script coverage is probed once with a sample
// character; characters of the Common, Inherited and Unknown scripts are
// tracked individually because script membership says nothing about them.
type glyphCoverage struct {
	scripts map[language.Script]bool
	chars   map[rune]bool
}

func newGlyphCoverage() *glyphCoverage {
	return &glyphCoverage{
		scripts: make(map[language.Script]bool),
		chars:   make(map[rune]bool),
	}
}

// classifyCoverage splits text into the scripts and the individual
// characters whose coverage must be verified. Control characters and
// whitespace render in any font and are skipped.
//
// scripts maps each concrete script to a sample character used for
// probing; chars holds the characters with no concrete script.
func classifyCoverage(text string) (scripts map[language.Script]rune, chars map[rune]struct{}) {
	scripts = make(map[language.Script]rune)
	chars = make(map[rune]struct{})
	for _, r := range text {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			continue
		}
		switch script := language.LookupScript(r); script {
		case language.Common, language.Inherited, language.Unknown:
			chars[r] = struct{}{}
		default:
			if _, ok := scripts[script]; !ok {
				scripts[script] = r
			}
		}
	}
	return scripts, chars
}

// checkAndUpdateCoverage probes the font against the outstanding scripts
// and characters, removing everything it covers from the two sets.
// Probe results are memoized per face, so re-checking the same text
// against the same font costs no further probes.
func (c *Cache) checkAndUpdateCoverage(lf *LoadedFont,
	scripts map[language.Script]rune, chars map[rune]struct{}) coverageResult {

	cov := c.coverage[lf.Face]
	if cov == nil {
		cov = newGlyphCoverage()
		c.coverage[lf.Face] = cov
	}

	improved := false
	for script, sample := range scripts {
		covered, known := cov.scripts[script]
		if !known {
			covered = c.probeGlyph(lf, sample)
			cov.scripts[script] = covered
		}
		if covered {
			delete(scripts, script)
			improved = true
		}
	}
	for r := range chars {
		covered, known := cov.chars[r]
		if !known {
			covered = c.probeGlyph(lf, r)
			cov.chars[r] = covered
		}
		if covered {
			delete(chars, r)
			improved = true
		}
	}

	if len(scripts) == 0 && len(chars) == 0 {
		return coverageComplete
	}
	if improved {
		return coverageImproved
	}
	return coverageIncomplete
}

// supportsLocked answers one character's coverage through the memo:
// script-level for concrete scripts, per character for Common, Inherited
// and Unknown. Caller must hold c.mu and must have filtered out control
// and whitespace characters.
func (c *Cache) supportsLocked(lf *LoadedFont, r rune) bool {
	cov := c.coverage[lf.Face]
	if cov == nil {
		cov = newGlyphCoverage()
		c.coverage[lf.Face] = cov
	}
	switch script := language.LookupScript(r); script {
	case language.Common, language.Inherited, language.Unknown:
		covered, known := cov.chars[r]
		if !known {
			covered = c.probeGlyph(lf, r)
			cov.chars[r] = covered
		}
		return covered
	default:
		covered, known := cov.scripts[script]
		if !known {
			covered = c.probeGlyph(lf, r)
			cov.scripts[script] = covered
		}
		return covered
	}
}

func (c *Cache) probeGlyph(lf *LoadedFont, r rune) bool {
	c.probes.Add(1)
	return c.ctx.HasGlyph(lf.Font, r)
}
