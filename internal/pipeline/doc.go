// Package pipeline validates input records at the boundary, fans them out to
// a pool of Folder workers, and calls a visit callback per result.
//
// The only contract to implement is Folder (Fold). This keeps the pipeline
// swappable and testable.
package pipeline
