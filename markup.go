// Package markup provides an interactive shell for exploring the markup
// tree of documents fetched over HTTP. A small command language drives a
// session: fetch a page, peek at its first lines, and walk its element
// tree with find sub-operations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, trafilatura/).
package markup
