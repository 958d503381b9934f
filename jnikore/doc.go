// Package jnikore implements the core model of gomkjni for configuring JNI
// native libraries: target machines and their variant names, shared library
// file names, the dependencies of a library and the compile steps of its
// variants. It uses idiomatic Go error handling. Build scripts that prefer
// less error checking can use the wrappers of the [gomkjni] package.
//
// Nothing in this package compiles, links or resolves anything. It only
// computes the configuration a native build needs.
//
// [gomkjni]: https://pkg.go.dev/git.fractalqb.de/fractalqb/gomkjni
package jnikore
