// Package weather normalizes Environment Canada battleboard Atom feeds.
//
// The feed URL is built from a template and a region code. Entries are
// always returned as a slice, whether the source document held zero, one,
// or many entry elements.
package weather
