// Package gomkjni helps to write Go build scripts for JNI libraries, i.e.
// Java libraries with a native part that has to be built for several
// operating systems and architectures. gomkjni computes what such a build
// needs to know per target machine: the variant name, the conventional
// shared library file name, the compiler flags and whether the variant can
// be built on the current host. It does not compile anything itself.
//
// The core model lives in [jnikore] and uses idiomatic Go error handling.
// This package wraps it for everyday use in build scripts:
//
//	lib := gomkjni.NewLibrary("")
//	err := gomkjni.Edit(lib, func(lib gomkjni.LibraryEd) {
//		lib.Targets("windows-x86-64", "linux-x86-64", "macos-x86-64").
//			NativeLib(gomkjni.Dep("com.example:native-utils:1.0")).
//			Optimized()
//	})
//
// Like in gomk, "mk.go" is the recommended file name for a build script.
//
// [jnikore]: https://pkg.go.dev/git.fractalqb.de/fractalqb/gomkjni/jnikore
package gomkjni
