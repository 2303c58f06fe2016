// Package domain contains the core types of the Lattice planner: operators
// (characters), skill templates, placed action instances, tracks, and the
// connections that form the action graph.
//
// The types here are plain data. All mutation rules (track binding
// uniqueness, link validity, cascade deletion) live in pkg/timeline, which is
// the only package that writes these structures.
package domain
