// Package fontdb maintains an in-memory registry of font faces and answers
// family + weight queries against it.
//
// A Database owns the raw bytes of every registered face. Faces can be
// registered from memory, from files, or by scanning the system font
// directories. The bytes of a face are shared, never copied per lookup, and
// stay valid for the lifetime of the Database, so callers may hold on to
// them (for example to feed a shaping engine).
package fontdb
