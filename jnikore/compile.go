package jnikore

import (
	"path/filepath"
	"strings"
)

type ToolChainFamily int

const (
	OtherToolChain ToolChainFamily = iota
	GCC
	Clang
	VisualCpp
)

func (f ToolChainFamily) String() string {
	switch f {
	case GCC:
		return "gcc"
	case Clang:
		return "clang"
	case VisualCpp:
		return "visualcpp"
	}
	return "other"
}

// ToolChain is the native compiler used to build a variant.
type ToolChain struct {
	Family ToolChainFamily
	Exe    string
}

func (tc ToolChain) String() string {
	if tc.Exe == "" {
		return tc.Family.String()
	}
	return tc.Family.String() + ":" + tc.Exe
}

// ClassifyCompiler derives the toolchain family from the compiler
// executable's base name.
func ClassifyCompiler(exe string) ToolChainFamily {
	base := strings.ToLower(filepath.Base(exe))
	base = strings.TrimSuffix(base, ".exe")
	switch {
	case base == "cl" || base == "clang-cl":
		return VisualCpp
	case strings.Contains(base, "clang"):
		return Clang
	case strings.Contains(base, "gcc"),
		strings.Contains(base, "g++"),
		base == "cc", base == "c++":
		return GCC
	}
	return OtherToolChain
}

// DetectToolChain returns a provider of the toolchain named by the [CCTag]
// of env, "cc" if unset. The tag is read when the provider is evaluated.
func DetectToolChain(env *Env) Provider[ToolChain] {
	return func() (ToolChain, error) {
		exe, ok := env.Tag(CCTag)
		if !ok || exe == "" {
			exe = "cc"
		}
		return ToolChain{Family: ClassifyCompiler(exe), Exe: exe}, nil
	}
}

// SourceCompile is the compile step of a native variant. Its arguments are
// collected from providers that are evaluated in order when the arguments
// are requested. The toolchain is deferred the same way.
type SourceCompile struct {
	Name      string
	ToolChain Provider[ToolChain]

	args []Provider[[]string]
}

func (c *SourceCompile) AddArgs(args ...string) {
	c.args = append(c.args, Value(args))
}

func (c *SourceCompile) AddArgsFrom(p Provider[[]string]) {
	c.args = append(c.args, p)
}

func (c *SourceCompile) CompilerArgs() (args []string, err error) {
	for _, p := range c.args {
		tmp, err := p()
		if err != nil {
			return nil, err
		}
		args = append(args, tmp...)
	}
	return args, nil
}

// OptimizationFlags returns the compiler flags for an optimized binary
// built with tc.
func OptimizationFlags(tc ToolChain) []string {
	switch tc.Family {
	case GCC, Clang:
		return []string{"-O2"}
	case VisualCpp:
		return []string{"/O2"}
	}
	return nil
}

// OptimizedBinary adds the optimization flags of c's toolchain to c's
// arguments. Each call adds the flags once more.
func OptimizedBinary(c *SourceCompile) {
	c.AddArgsFrom(func() ([]string, error) {
		if c.ToolChain == nil {
			return nil, nil
		}
		return Map(c.ToolChain, OptimizationFlags)()
	})
}
