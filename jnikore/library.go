package jnikore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Library is a JNI library built for a set of target machines. Each target
// yields one [Variant] with its own compile step.
type Library struct {
	Dir     string
	Targets *TargetSet
	Deps    Dependencies

	sync.Mutex

	name       string
	compileCfg []func(*SourceCompile)
}

// NewLibrary creates a library in dir that targets [DefaultTargets]. An
// empty dir is the current working directory.
func NewLibrary(dir string) *Library {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Library{
		Dir:     dir,
		Targets: DefaultTargets(),
	}
}

// Name returns the name set with SetName, the base name of lib's directory
// otherwise.
func (lib *Library) Name() string {
	if lib.name != "" {
		return lib.name
	}
	tmp := lib.Dir
	if tmp == "" || tmp == "." {
		tmp, _ = filepath.Abs(tmp)
	}
	return filepath.Base(tmp)
}

func (lib *Library) SetName(name string) { lib.name = name }

func (lib *Library) String() string { return lib.Name() }

// ConfigureCompile registers cfg to be applied to the compile step of every
// variant.
func (lib *Library) ConfigureCompile(cfg func(*SourceCompile)) {
	lib.compileCfg = append(lib.compileCfg, cfg)
}

// Variants configures one variant per target of lib. It fails when the
// context of tr is done.
func (lib *Library) Variants(tr *Trace, env *Env) ([]*Variant, error) {
	if env == nil {
		env = DefaultEnv(tr)
	}
	tr = tr.push(lib)
	tr.configureLibrary(lib)
	var vs []*Variant
	for _, t := range lib.Targets.Targets() {
		if err := tr.Ctx().Err(); err != nil {
			return nil, fmt.Errorf("library %s: %w", lib.Name(), err)
		}
		v, err := lib.variant(t, env)
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", lib.Name(), err)
		}
		tr.push(v).configureVariant(v)
		vs = append(vs, v)
	}
	return vs, nil
}

// HostVariants returns the variants of lib that target the host described
// by env.
func (lib *Library) HostVariants(tr *Trace, env *Env) ([]*Variant, error) {
	if env == nil {
		env = DefaultEnv(tr)
	}
	all, err := lib.Variants(tr, env)
	if err != nil {
		return nil, err
	}
	var vs []*Variant
	for _, v := range all {
		if v.TargetsHost {
			vs = append(vs, v)
			continue
		}
		tr.push(v).skipVariant(v, "host is "+env.HostOSName())
	}
	return vs, nil
}

func (lib *Library) variant(t TargetMachine, env *Env) (*Variant, error) {
	name, err := t.VariantName()
	if err != nil {
		return nil, err
	}
	file, err := LibraryFileName(lib.Name(), t.OS)
	if err != nil {
		return nil, err
	}
	v := &Variant{
		Target:      t,
		Name:        name,
		LibraryFile: file,
		TargetsHost: t.TargetsHost(env),
		Compile: &SourceCompile{
			Name:      "compile-" + name,
			ToolChain: DetectToolChain(env),
		},
		lib: lib,
	}
	for _, cfg := range lib.compileCfg {
		cfg(v.Compile)
	}
	return v, nil
}

// Variant is the configuration of a [Library] for one target machine.
type Variant struct {
	Target      TargetMachine
	Name        string
	LibraryFile string
	TargetsHost bool
	Compile     *SourceCompile

	lib *Library
}

func (v *Variant) Library() *Library { return v.lib }

func (v *Variant) String() string { return v.lib.Name() + "/" + v.Name }
