// Package structural provides tree-level validators built on top of
// pkg/check: Nested for fixed-schema objects and Recursive for open-ended
// walks with a per-terminal leaf validator.
//
// Nested mirrors the contract of check.Composite but also accepts structs
// (and pointers to structs) through a reflection-based attribute adapter,
// and runs a cycle check before iterating fields so self-referential objects
// abort one branch with circular_reference instead of looping.
//
// Recursive walks mappings and ordered collections without any schema and
// validates every terminal value. Its behavior at the maximum-depth boundary
// is selectable: hard failure, truncate-with-warning, or warn-and-continue.
//
// Both validators share the context's cycle set across sibling branches, so
// a substructure reachable via two paths is only visited once; the second
// sighting reports circular_reference even when the overall structure is
// acyclic.
package structural
