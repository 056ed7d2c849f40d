// Package loft builds meshes by sweeping a 2D cross-section profile along a 2D
// path shape.
//
// A Profile lists outline points, each bound to one of a few unique lateral
// offsets (Xs). For every offset the path shape is resolved into a list of
// stations; all offsets get the same number of stations so that adjacent
// outline points can be joined by quads. Generate then places a copy of the
// outline at every station and emits band quads, end caps and side caps with
// aligned material ids and UV loops.
//
// The package is stateless. Calls never share data and may run concurrently.
package loft
