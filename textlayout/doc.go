// Package textlayout arranges shaped text into lines within a box.
//
// LayoutLines splits text at hard breaks, optionally wraps it to a
// maximum width, elides overflowing text with an ellipsis and aligns
// every line horizontally and vertically. It hands finished lines to a
// caller-provided sink, so the same pass drives rendering and measuring.
package textlayout
