package fontdb

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/akiross/slint"
)

// FaceID identifies one registered face within a Database.
// IDs are only meaningful for the Database that issued them.
type FaceID uint32

// Weight is a CSS-style font weight (100..900).
type Weight uint16

// Common weight values.
const (
	WeightThin     Weight = 100
	WeightLight    Weight = 300
	WeightNormal   Weight = 400
	WeightMedium   Weight = 500
	WeightSemibold Weight = 600
	WeightBold     Weight = 700
	WeightBlack    Weight = 900
)

// face is one registered font face. The data slice is shared with every
// other face loaded from the same file or collection.
type face struct {
	family string
	weight Weight
	data   []byte
	index  int    // face index within a collection, 0 for single fonts
	source string // canonical file path, "" for in-memory fonts
}

// Database is a registry of font faces.
//
// Database is safe for concurrent use. Registered faces are never removed:
// a FaceID stays valid, and the backing bytes stay alive, for the lifetime
// of the Database.
type Database struct {
	mu          sync.RWMutex
	faces       []face
	families    map[string][]int // lowercased family name -> indices into faces
	loadedPaths map[string]bool  // canonical paths already registered
	sansSerif   string
}

// New creates an empty Database.
func New() *Database {
	return &Database{
		families:    make(map[string][]int),
		loadedPaths: make(map[string]bool),
	}
}

// LoadFontData registers every face found in data (TTF, OTF or TTC).
// The data slice is copied internally and can be reused after this call.
func (db *Database) LoadFontData(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	db.mu.Lock()
	defer db.mu.Unlock()
	return db.loadLocked(dataCopy, "")
}

// LoadFontFile registers every face found in the file at path.
//
// Loading is idempotent by canonical path: registering a path that is
// already part of the database is a no-op and returns nil.
func (db *Database) LoadFontFile(path string) error {
	canonical := canonicalPath(path)

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.loadedPaths[canonical] {
		return nil
	}

	data, err := os.ReadFile(canonical)
	if err != nil {
		return fmt.Errorf("fontdb: failed to read font file: %w", err)
	}
	if err := db.loadLocked(data, canonical); err != nil {
		return err
	}
	db.loadedPaths[canonical] = true
	return nil
}

// loadLocked parses data and appends its faces. Caller must hold db.mu.
func (db *Database) loadLocked(data []byte, source string) error {
	metas, err := parseFaces(data)
	if err != nil {
		return err
	}
	for _, m := range metas {
		idx := len(db.faces)
		db.faces = append(db.faces, face{
			family: m.family,
			weight: m.weight,
			data:   data,
			index:  m.index,
			source: source,
		})
		key := strings.ToLower(m.family)
		db.families[key] = append(db.families[key], idx)
		slint.Logger().Debug("fontdb: registered face",
			"family", m.family, "weight", int(m.weight), "source", source)
	}
	return nil
}

// Query returns the face best matching one of the given families at the
// given weight. Families are tried in order; within a family the face with
// the closest weight wins (exact matches first). Family comparison is
// case-insensitive.
func (db *Database) Query(families []string, weight Weight) (FaceID, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, family := range families {
		indices := db.families[strings.ToLower(family)]
		best, bestDist := -1, int(^uint(0)>>1)
		for _, i := range indices {
			dist := int(db.faces[i].weight) - int(weight)
			if dist < 0 {
				dist = -dist
			}
			if dist < bestDist {
				best, bestDist = i, dist
			}
		}
		if best >= 0 {
			return FaceID(best), true
		}
	}
	return 0, false
}

// FaceData returns the raw bytes backing a face and the face's index within
// its collection. The returned slice is shared and must not be modified.
func (db *Database) FaceData(id FaceID) (data []byte, index int, ok bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if int(id) >= len(db.faces) {
		return nil, 0, false
	}
	f := db.faces[id]
	return f.data, f.index, true
}

// HasFamily reports whether at least one face of the named family is
// registered. Comparison is case-insensitive.
func (db *Database) HasFamily(name string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.families[strings.ToLower(name)]) > 0
}

// Families returns the sorted list of registered family names.
func (db *Database) Families() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	seen := make(map[string]bool, len(db.faces))
	out := make([]string, 0, len(db.faces))
	for _, f := range db.faces {
		if !seen[f.family] {
			seen[f.family] = true
			out = append(out, f.family)
		}
	}
	sort.Strings(out)
	return out
}

// NumFaces returns the number of registered faces.
func (db *Database) NumFaces() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.faces)
}

// SetSansSerifFamily pins the family used as the generic sans-serif
// fallback. Without an explicit choice, SansSerifFamily picks one.
func (db *Database) SetSansSerifFamily(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.sansSerif = name
}

// sansSerifCandidates are well-known sans-serif families, in preference
// order, used to pick a default generic family.
var sansSerifCandidates = []string{
	"DejaVu Sans",
	"Noto Sans",
	"Liberation Sans",
	"Cantarell",
	"Ubuntu",
	"Roboto",
	"Segoe UI",
	"Arial",
	"Helvetica",
	"Helvetica Neue",
	"FreeSans",
	"Go",
}

// SansSerifFamily returns the family used as the generic sans-serif
// fallback: the pinned one if set, otherwise the first well-known
// sans-serif family present, otherwise the first registered family.
// Returns "" for an empty database.
func (db *Database) SansSerifFamily() string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.sansSerif != "" {
		return db.sansSerif
	}
	for _, name := range sansSerifCandidates {
		if indices := db.families[strings.ToLower(name)]; len(indices) > 0 {
			return db.faces[indices[0]].family
		}
	}
	if len(db.faces) > 0 {
		return db.faces[0].family
	}
	return ""
}

// canonicalPath resolves symlinks and relative segments so that the same
// file registered under different spellings is detected as a duplicate.
// On resolution failure the cleaned absolute path is used as-is.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
