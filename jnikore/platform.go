package jnikore

import (
	"fmt"
	"strings"
)

// OSFamily identifies the operating system family of a [TargetMachine].
// Only [Windows], [Linux] and [MacOS] are recognized. Any other value is an
// unrecognized family, its string serves as the description.
type OSFamily string

const (
	Windows OSFamily = "windows"
	Linux   OSFamily = "linux"
	MacOS   OSFamily = "macos"
)

func (f OSFamily) IsWindows() bool { return f == Windows }
func (f OSFamily) IsLinux() bool   { return f == Linux }
func (f OSFamily) IsMacOS() bool   { return f == MacOS }

func (f OSFamily) Known() bool { return f.IsWindows() || f.IsLinux() || f.IsMacOS() }

func (f OSFamily) String() string { return string(f) }

// ParseOSFamily maps common spellings of the recognized families to their
// OSFamily. Names it does not know are returned as unrecognized families.
func ParseOSFamily(name string) OSFamily {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
	switch n {
	case "windows", "win", "win32", "win64":
		return Windows
	case "linux":
		return Linux
	case "macos", "macosx", "osx", "darwin", "mac":
		return MacOS
	}
	return OSFamily(name)
}

// UnknownPlatformError is returned when an operating system family is none
// of the recognized ones. There is no fallback convention for such
// platforms.
type UnknownPlatformError struct {
	Family string
}

func (e UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown operating system family '%s'", e.Family)
}

// Arch is the machine architecture of a [TargetMachine]. It only
// distinguishes 32 from 64 bit x86.
type Arch uint8

const (
	X86_64 Arch = iota
	X86
)

func (a Arch) Is32Bit() bool { return a == X86 }

func (a Arch) String() string {
	if a.Is32Bit() {
		return "x86"
	}
	return "x86-64"
}

func ParseArch(name string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x86", "i386", "i686", "386":
		return X86, nil
	case "x86-64", "x86_64", "amd64", "x64":
		return X86_64, nil
	}
	return X86_64, fmt.Errorf("unsupported architecture '%s'", name)
}

// TargetMachine is the operating system family and architecture a native
// binary is built for. It is independent of the host running the build.
type TargetMachine struct {
	OS   OSFamily
	Arch Arch
}

// OSFamilyName returns the canonical token of t's operating system family.
func (t TargetMachine) OSFamilyName() (string, error) {
	switch {
	case t.OS.IsWindows():
		return "windows", nil
	case t.OS.IsLinux():
		return "linux", nil
	case t.OS.IsMacOS():
		return "macos", nil
	}
	return "", UnknownPlatformError{Family: t.OS.String()}
}

func (t TargetMachine) ArchitectureString() string { return t.Arch.String() }

// VariantName returns "<os>-<arch>", e.g. "linux-x86-64".
func (t TargetMachine) VariantName() (string, error) {
	osn, err := t.OSFamilyName()
	if err != nil {
		return "", err
	}
	return osn + "-" + t.ArchitectureString(), nil
}

// TargetsHost reports whether t's operating system family is the one of the
// host described by env. The host name is matched by substring because host
// names like "Windows 10" or "Mac OS X" are verbose. If env is nil, the
// process environment is used.
func (t TargetMachine) TargetsHost(env *Env) bool {
	if env == nil {
		env = DefaultEnv(nil)
	}
	osName := strings.ReplaceAll(strings.ToLower(env.HostOSName()), " ", "")
	switch {
	case t.OS.IsWindows() && strings.Contains(osName, "windows"):
		return true
	case t.OS.IsLinux() && strings.Contains(osName, "linux"):
		return true
	case t.OS.IsMacOS() && strings.Contains(osName, "macos"):
		return true
	}
	return false
}

func (t TargetMachine) String() string {
	if vn, err := t.VariantName(); err == nil {
		return vn
	}
	return t.OS.String() + "-" + t.ArchitectureString()
}

// ParseTargetMachine parses a variant name like "windows-x86" or
// "macos-x86-64". Unrecognized families yield an [UnknownPlatformError].
func ParseTargetMachine(variant string) (TargetMachine, error) {
	osn, arch, ok := strings.Cut(variant, "-")
	if !ok {
		return TargetMachine{}, fmt.Errorf("variant '%s' without architecture", variant)
	}
	fam := ParseOSFamily(osn)
	if !fam.Known() {
		return TargetMachine{}, UnknownPlatformError{Family: osn}
	}
	a, err := ParseArch(arch)
	if err != nil {
		return TargetMachine{}, fmt.Errorf("variant '%s': %w", variant, err)
	}
	return TargetMachine{OS: fam, Arch: a}, nil
}

// LibraryFileName returns the conventional shared library file name for a
// library called name on the operating system family os.
func LibraryFileName(name string, os OSFamily) (string, error) {
	switch {
	case os.IsWindows():
		return name + ".dll", nil
	case os.IsLinux():
		return "lib" + name + ".so", nil
	case os.IsMacOS():
		return "lib" + name + ".dylib", nil
	}
	return "", UnknownPlatformError{Family: os.String()}
}
