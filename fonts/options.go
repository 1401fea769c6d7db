package fonts

// Option configures a Cache.
type Option func(*Cache)

// WithDatabase sets the face database. Defaults to an empty
// fontdb.Database; use DefaultCache for one loaded with system fonts.
func WithDatabase(db Database) Option {
	return func(c *Cache) { c.db = db }
}

// WithTextContext sets the shaping context. Defaults to a fresh
// shape.Context.
func WithTextContext(ctx TextContext) Option {
	return func(c *Cache) { c.ctx = ctx }
}

// WithFallbackEnumerator sets the fallback family source. Defaults to the
// platform enumerator.
func WithFallbackEnumerator(e FallbackEnumerator) Option {
	return func(c *Cache) { c.enumerator = e }
}

// WithDefaultPixelSize sets the pixel size used by requests that leave
// theirs unset. Defaults to DefaultFontSize.
func WithDefaultPixelSize(size float64) Option {
	return func(c *Cache) { c.defaultPixelSize = size }
}
