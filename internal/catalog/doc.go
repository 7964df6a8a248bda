// Package catalog holds the beverage catalog domain used by every bevctl surface.
//
// Items come from the catalog backend as free-form JSON objects. They are kept
// as ordered key/value lists (Item) so the detail view shows fields in the
// order the server sent them and re-serialises them unchanged.
//
// # Rendering rules
//
// Text conversion follows the rules the catalog UI has always used for
// interpolated values: numbers print in shortest round-trip form (2, 0.5, 35),
// absent keys print as "undefined" and null as "null". Summarize builds the
// one-line list summaries:
//
//	Cola - $2
//	Crate of Beer, 0.5L, Alcoholic (12 bottles) - $20
//
// # Coercion
//
// Edited values come back as strings. CoercionPolicy decides per field whether
// a string is kept, parsed as a number or boolean, or guessed (KindAuto, the
// historical behaviour). Guessing retypes numeric-looking strings such as a
// supplier code "007"; configure such fields as KindString.
package catalog
