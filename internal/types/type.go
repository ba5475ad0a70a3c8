// Package types holds the static information the checker records about a
// program: the kind of value each variable is inferred to hold.
//
// Kinds are advisory. They are shown to users but never change how a
// program evaluates.
package types
