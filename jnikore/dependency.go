package jnikore

import (
	"slices"
	"strings"
)

// Provider is a value that is computed only when it is requested.
type Provider[T any] func() (T, error)

// Value returns a provider of the already known value v.
func Value[T any](v T) Provider[T] {
	return func() (T, error) { return v, nil }
}

// Map returns a provider that applies f to the value of p when requested.
func Map[T, U any](p Provider[T], f func(T) U) Provider[U] {
	return func() (U, error) {
		v, err := p()
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// ModuleDependency is an external module a JNI library depends on.
type ModuleDependency struct {
	Group, Name, Version string

	RequiredCapabilities []string
}

// Notation returns "group:name:version". The parts are not validated.
func (d ModuleDependency) Notation() string {
	return d.Group + ":" + d.Name + ":" + d.Version
}

// RequireCapabilities makes d a [CapabilitiesHandler].
func (d *ModuleDependency) RequireCapabilities(notations ...string) {
	for _, n := range notations {
		if !slices.Contains(d.RequiredCapabilities, n) {
			d.RequiredCapabilities = append(d.RequiredCapabilities, n)
		}
	}
}

// ParseNotation splits a notation into group, name and version. Missing
// parts stay empty.
func ParseNotation(notation string) ModuleDependency {
	var d ModuleDependency
	parts := strings.SplitN(notation, ":", 3)
	switch len(parts) {
	case 3:
		d.Version = parts[2]
		fallthrough
	case 2:
		d.Name = parts[1]
		fallthrough
	default:
		d.Group = parts[0]
	}
	return d
}

type DependencyHandler interface {
	JVMImplementation(notation string) error
	NativeImplementation(notation string, configure ...func(*ModuleDependency)) error
}

type CapabilitiesHandler interface {
	RequireCapabilities(notations ...string)
}

func JVMLibImplementation(h DependencyHandler, dep Provider[ModuleDependency]) error {
	n, err := Map(dep, ModuleDependency.Notation)()
	if err != nil {
		return err
	}
	return h.JVMImplementation(n)
}

func NativeLibImplementation(
	h DependencyHandler,
	dep Provider[ModuleDependency],
	configure ...func(*ModuleDependency),
) error {
	n, err := Map(dep, ModuleDependency.Notation)()
	if err != nil {
		return err
	}
	return h.NativeImplementation(n, configure...)
}

func RequireLibCapability(h CapabilitiesHandler, dep Provider[ModuleDependency]) error {
	d, err := dep()
	if err != nil {
		return err
	}
	h.RequireCapabilities(d.Notation())
	return nil
}

// Dependencies records the JVM and native dependencies of a [Library] in
// declaration order.
type Dependencies struct {
	jvm, native []*ModuleDependency
}

var _ DependencyHandler = (*Dependencies)(nil)

func (ds *Dependencies) JVMImplementation(notation string) error {
	d := ParseNotation(notation)
	ds.jvm = append(ds.jvm, &d)
	return nil
}

func (ds *Dependencies) NativeImplementation(notation string, configure ...func(*ModuleDependency)) error {
	d := ParseNotation(notation)
	for _, cfg := range configure {
		if cfg != nil {
			cfg(&d)
		}
	}
	ds.native = append(ds.native, &d)
	return nil
}

func (ds *Dependencies) JVM() []*ModuleDependency { return ds.jvm }

func (ds *Dependencies) Native() []*ModuleDependency { return ds.native }
