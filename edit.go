package gomkjni

import (
	"context"
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/gomkjni/jnikore"
)

type (
	Env              = jnikore.Env
	Library          = jnikore.Library
	Variant          = jnikore.Variant
	TargetMachine    = jnikore.TargetMachine
	ModuleDependency = jnikore.ModuleDependency
	SourceCompile    = jnikore.SourceCompile
)

func DefaultEnv() *Env { return jnikore.DefaultEnv(nil) }

func NewLibrary(dir string) *Library { return jnikore.NewLibrary(dir) }

// Dep returns a provider of the dependency with the given notation
// "group:name:version".
func Dep(notation string) jnikore.Provider[ModuleDependency] {
	return jnikore.Value(jnikore.ParseNotation(notation))
}

// Edit locks lib and calls do with a [LibraryEd] for it. A panic in do is
// recovered and returned as error, so do does not need to check errors.
func Edit(lib *Library, do func(LibraryEd)) (err error) {
	lib.Lock()
	defer func() {
		lib.Unlock()
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()
	do(LibraryEd{lib})
	return
}

// LibraryEd is used with [Edit].
type LibraryEd struct{ l *Library }

func (ed LibraryEd) Library() *Library { return ed.l }

func (ed LibraryEd) Name(name string) LibraryEd {
	ed.l.SetName(name)
	return ed
}

// Targets replaces the targets of the library with the parsed variant
// names.
func (ed LibraryEd) Targets(variants ...string) LibraryEd {
	ed.l.Targets = mustRet(jnikore.ParseTargets(variants...))
	return ed
}

func (ed LibraryEd) AddTarget(os jnikore.OSFamily, arch jnikore.Arch) LibraryEd {
	if ed.l.Targets == nil {
		ed.l.Targets = mustRet(jnikore.NewTargetSet())
	}
	mustEd(ed.l.Targets.Add(TargetMachine{OS: os, Arch: arch}))
	return ed
}

func (ed LibraryEd) JVMLib(dep jnikore.Provider[ModuleDependency]) LibraryEd {
	mustEd(jnikore.JVMLibImplementation(&ed.l.Deps, dep))
	return ed
}

// NativeLib adds a native dependency that requires the capabilities of
// caps.
func (ed LibraryEd) NativeLib(
	dep jnikore.Provider[ModuleDependency],
	caps ...jnikore.Provider[ModuleDependency],
) LibraryEd {
	mustEd(jnikore.NativeLibImplementation(&ed.l.Deps, dep,
		func(d *ModuleDependency) {
			for _, c := range caps {
				mustEd(jnikore.RequireLibCapability(d, c))
			}
		},
	))
	return ed
}

func (ed LibraryEd) Compile(cfg func(*SourceCompile)) LibraryEd {
	ed.l.ConfigureCompile(cfg)
	return ed
}

// Optimized makes all variants optimized binaries.
func (ed LibraryEd) Optimized() LibraryEd {
	ed.l.ConfigureCompile(jnikore.OptimizedBinary)
	return ed
}

func (ed LibraryEd) Variants(tr *jnikore.Trace, env *Env) []*Variant {
	return mustRet(ed.l.Variants(tr, env))
}

func (ed LibraryEd) HostVariants(tr *jnikore.Trace, env *Env) []*Variant {
	return mustRet(ed.l.HostVariants(tr, env))
}

// Configure returns the variants of lib, only those targeting the host if
// hostOnly is set. If tr is nil, the [DefaultTracer] is used.
func Configure(lib *Library, hostOnly bool, tr *jnikore.Trace, env *Env) ([]*Variant, error) {
	if tr == nil {
		tr = jnikore.NewTrace(context.Background(), DefaultTracer())
	}
	lib.Lock()
	defer lib.Unlock()
	if hostOnly {
		return lib.HostVariants(tr, env)
	}
	return lib.Variants(tr, env)
}

func mustEd(err error) {
	if err != nil {
		panic(err)
	}
}

func mustRet[T any](v T, err error) T {
	mustEd(err)
	return v
}
