package fonts

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/akiross/slint"
	"github.com/akiross/slint/fontdb"
	"github.com/akiross/slint/shape"
)

// Cache resolves font requests and memoizes the results.
//
// Resolution is cached by family and weight: pixel size and letter spacing
// do not load new faces, they only scale. Per-face glyph coverage is
// memoized too, so repeated fallback walks over the same text cost no
// further glyph probes.
//
// Cache is safe for concurrent use; a single mutex guards all maps.
type Cache struct {
	mu         sync.Mutex
	db         Database
	ctx        TextContext
	enumerator FallbackEnumerator

	defaultPixelSize float64

	resolved map[requestKey]*LoadedFont
	byFace   map[fontdb.FaceID]*LoadedFont
	coverage map[fontdb.FaceID]*glyphCoverage

	probes atomic.Uint64
}

// NewCache creates a Cache. Without options it starts from an empty
// database, a fresh shaping context and the platform fallback enumerator.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		resolved: make(map[requestKey]*LoadedFont),
		byFace:   make(map[fontdb.FaceID]*LoadedFont),
		coverage: make(map[fontdb.FaceID]*glyphCoverage),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.db == nil {
		c.db = fontdb.New()
	}
	if c.ctx == nil {
		c.ctx = shape.NewContext()
	}
	if c.enumerator == nil {
		c.enumerator = platformEnumerator()
	}
	if c.defaultPixelSize == 0 {
		c.defaultPixelSize = DefaultFontSize
	}
	return c
}

var (
	defaultCache     *Cache
	defaultCacheOnce sync.Once
)

// DefaultCache returns the process-wide cache, scanning the system font
// directories on first use.
func DefaultCache() *Cache {
	defaultCacheOnce.Do(func() {
		db := fontdb.New()
		db.LoadSystemFonts()
		defaultCache = NewCache(WithDatabase(db))
	})
	return defaultCache
}

// RegisterFontFromMemory registers the faces in data with the cache's
// database, making their families resolvable.
func (c *Cache) RegisterFontFromMemory(data []byte) error {
	return c.db.LoadFontData(data)
}

// RegisterFontFromPath registers the faces of the font file at path.
// Registering the same path twice is a no-op.
func (c *Cache) RegisterFontFromPath(path string) error {
	return c.db.LoadFontFile(path)
}

// RegisterFontFromMemory registers font data with the default cache.
func RegisterFontFromMemory(data []byte) error {
	return DefaultCache().RegisterFontFromMemory(data)
}

// RegisterFontFromPath registers a font file with the default cache.
func RegisterFontFromPath(path string) error {
	return DefaultCache().RegisterFontFromPath(path)
}

// ResolveFont resolves a request to a loaded font. An unknown family
// falls back to the database's sans-serif family; if that cannot be
// resolved either the text stack is unusable and ResolveFont panics.
func (c *Cache) ResolveFont(req FontRequest) *LoadedFont {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lf, ok := c.resolveLocked(req.Family, req.weightOrDefault()); ok {
		return lf
	}
	if lf, ok := c.resolveLocked(c.db.SansSerifFamily(), req.weightOrDefault()); ok {
		// Remember the substitution under the requested key too, so the
		// next resolve of this family skips the database.
		c.resolved[req.key()] = lf
		slint.Logger().Debug("fonts: family not found, using sans-serif",
			"family", req.Family)
		return lf
	}
	slint.Logger().Error("fonts: no usable font in the database",
		"family", req.Family)
	panic(fmt.Sprintf("%v (family %q)", ErrNoFontFound, req.Family))
}

// resolveLocked resolves one family at one weight, loading and registering
// the face on first use. Caller must hold c.mu.
func (c *Cache) resolveLocked(family string, weight fontdb.Weight) (*LoadedFont, bool) {
	key := FontRequest{Family: family, Weight: weight}.key()
	if lf, ok := c.resolved[key]; ok {
		return lf, true
	}

	var families []string
	if family != "" {
		families = []string{family}
	}
	faceID, ok := c.db.Query(families, weight)
	if !ok {
		return nil, false
	}

	if lf, ok := c.byFace[faceID]; ok {
		c.resolved[key] = lf
		return lf, true
	}

	data, index, ok := c.db.FaceData(faceID)
	if !ok {
		return nil, false
	}
	fontID, err := c.ctx.RegisterFace(data, index)
	if err != nil {
		slint.Logger().Warn("fonts: face failed to parse for shaping",
			"family", family, "error", err)
		return nil, false
	}
	metrics, err := c.ctx.FaceMetrics(fontID)
	if err != nil {
		return nil, false
	}

	lf := &LoadedFont{Face: faceID, Font: fontID, metrics: metrics}
	c.resolved[key] = lf
	c.byFace[faceID] = lf
	return lf, true
}

// Font resolves a request into a composite font whose chain covers as much
// of referenceText as the registered fonts allow.
//
// The requested font always leads the chain. If it leaves scripts or
// characters of referenceText uncovered, the fallback families are walked
// in order; a candidate joins the chain only when it covers something
// still outstanding, and the walk stops as soon as nothing is outstanding.
func (c *Cache) Font(req FontRequest, scaleFactor float64, referenceText string) *Font {
	primary := c.ResolveFont(req)
	pixelSize := req.PixelSize
	if pixelSize == 0 {
		pixelSize = c.defaultPixelSize
	}
	pixelSize *= scaleFactor
	chain := []ScaledFont{{Loaded: primary, PixelSize: pixelSize}}

	scripts, chars := classifyCoverage(referenceText)

	c.mu.Lock()
	result := c.checkAndUpdateCoverage(primary, scripts, chars)
	if result != coverageComplete {
		weight := req.weightOrDefault()
		for _, family := range c.enumerator.FallbackFamilies(req, referenceText) {
			lf, ok := c.resolveLocked(family, weight)
			if !ok || chainContains(chain, lf.Face) {
				continue
			}
			res := c.checkAndUpdateCoverage(lf, scripts, chars)
			if res == coverageIncomplete {
				continue
			}
			chain = append(chain, ScaledFont{Loaded: lf, PixelSize: pixelSize})
			if res == coverageComplete {
				break
			}
		}
	}
	c.mu.Unlock()

	if len(chain) > 1 {
		slint.Logger().Debug("fonts: composed fallback chain",
			"family", req.Family, "fonts", len(chain))
	}
	return NewFont(c.ctx, chain, req.LetterSpacing*scaleFactor)
}

// FaceSupportsChar reports whether a database face maps r, registering the
// face with the shaping context if needed. Answers are memoized through
// the coverage table, one probe per (face, script) or (face, char).
// Control and whitespace characters are supported without touching the
// face: they participate in layout but never need a glyph.
func (c *Cache) FaceSupportsChar(id fontdb.FaceID, r rune) bool {
	if unicode.IsControl(r) || unicode.IsSpace(r) {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	lf, ok := c.byFace[id]
	if !ok {
		data, index, okData := c.db.FaceData(id)
		if !okData {
			return false
		}
		fontID, err := c.ctx.RegisterFace(data, index)
		if err != nil {
			return false
		}
		metrics, err := c.ctx.FaceMetrics(fontID)
		if err != nil {
			return false
		}
		lf = &LoadedFont{Face: id, Font: fontID, metrics: metrics}
		c.byFace[id] = lf
	}
	return c.supportsLocked(lf, r)
}

// CoverageProbes returns the cumulative number of glyph-coverage probes.
// Repeating a query over already-probed text must not increase it.
func (c *Cache) CoverageProbes() uint64 {
	return c.probes.Load()
}

func chainContains(chain []ScaledFont, id fontdb.FaceID) bool {
	for _, sf := range chain {
		if sf.Loaded.Face == id {
			return true
		}
	}
	return false
}
