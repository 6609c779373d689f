// Package filter compiles structured filter requests into validated,
// normalized filters ready for the store.
//
// Both entry paths converge here: direct structured queries and filters
// derived by the natural-language interpreter are the same Filter shape and
// go through the same Compile validation. Compilation is a pure transform;
// it never touches storage.
package filter
