// Package navdir maintains a categorized directory of external web links
// and presents it as a searchable catalog. It extracts the category and
// site hierarchy from a flat, heading-based HTML page, persists it as a
// JSON artifact and serves it through a small web client.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package navdir
