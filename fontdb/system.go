package fontdb

import (
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/akiross/slint"
)

// LoadSystemFonts scans the platform font directories and registers every
// parsable TTF/OTF/TTC file. It returns the number of files registered.
//
// Files that fail to parse are skipped with a warning; a system scan is
// best-effort by nature.
func (db *Database) LoadSystemFonts() int {
	loaded := 0
	for _, path := range findfont.List() {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf", ".ttc":
		default:
			continue
		}
		if err := db.LoadFontFile(path); err != nil {
			slint.Logger().Warn("fontdb: skipping system font", "path", path, "error", err)
			continue
		}
		loaded++
	}
	slint.Logger().Info("fontdb: system font scan complete",
		"files", loaded, "faces", db.NumFaces())
	return loaded
}
