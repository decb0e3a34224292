// Package wcagref provides structured, versioned lookup access to the W3C
// Web Content Accessibility Guidelines (WCAG 2.0, 2.1 and 2.2).
//
// Callers resolve success criteria by version and numeric coordinates
// (chapter.section.subsection) and techniques by version and code
// (e.g. "G57"), receiving metadata records or direct links into the
// W3C documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package wcagref
