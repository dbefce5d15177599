// Package catalog describes the pieces of a show and the actors in them.
//
// An Item is a tagged union over three kinds: a standalone piece, a diddy
// (a short standalone piece), and a vignette sequence made of ordered parts.
// Every kind answers the same two questions: how many positionable units it
// contributes to the running order, and which actors appear in unit k.
package catalog
