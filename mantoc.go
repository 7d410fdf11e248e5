// Package mantoc provides a whatis(1)-style summarizer for manual pages.
// It classifies raw *roff page source as man or mdoc, extracts the NAME
// section, interprets the small set of inline macros needed to recover a
// one-line "name(s) - description" summary, and follows bounded .so
// redirections, all without a prebuilt whatis index database.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., roff/, gzip/, manpath/).
package mantoc
