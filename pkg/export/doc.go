// Package export emits a census run in interchange formats: an HTML
// table document (one fragment per source host), delimited CSV over the
// raw record sequence, and a flat "field : value" listing.
//
// Formats are independently selectable and may all run in one
// invocation; targets are named deterministically from the output base
// name plus a fixed suffix. A write failure in one format never
// suppresses the others.
package export
