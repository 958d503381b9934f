package jnikore

import (
	"maps"
	"os"
	"runtime"
	"strings"
)

const (
	// HostOSTag overrides the operating system name reported for the host.
	HostOSTag = "JNI_HOST_OS"

	// CCTag names the C compiler used for the native variants.
	CCTag = "CC"
)

// Env holds the tags of the build environment. The tags of a default Env
// are the process environment variables. A sub-environment inherits the
// tags of its parent unless it sets or deletes them itself.
type Env struct {
	tags   map[string]string
	delt   map[string]bool
	parent *Env
}

func DefaultEnv(tr *Trace) *Env {
	env := &Env{tags: make(map[string]string)}
	for _, evar := range os.Environ() {
		k, v, _ := strings.Cut(evar, "=")
		if k == "" {
			if tr != nil {
				tr.Warn("ignoring default `env`", `env`, evar)
			}
			continue
		}
		env.tags[k] = v
	}
	return env
}

func (e *Env) Sub() *Env { return &Env{parent: e} }

func (e *Env) Tag(key string) (string, bool) {
	for e != nil {
		if e.tags != nil {
			if v, ok := e.tags[key]; ok {
				return v, true
			}
		}
		if e.delt != nil && e.delt[key] {
			break
		}
		e = e.parent
	}
	return "", false
}

func (e *Env) SetTag(key, val string) {
	if e.tags == nil {
		e.tags = make(map[string]string)
	}
	e.tags[key] = val
	if e.delt != nil {
		delete(e.delt, key)
	}
}

// SetTags sets tags from "key=value" strings. A string without '=' sets the
// tag to the empty value.
func (e *Env) SetTags(env ...string) {
	for _, evar := range env {
		k, v, _ := strings.Cut(evar, "=")
		e.SetTag(k, v)
	}
}

func (e *Env) DelTag(key string) {
	delete(e.tags, key)
	if e.parent != nil {
		if e.delt == nil {
			e.delt = make(map[string]bool)
		}
		e.delt[key] = true
	}
}

// Tags returns the effective tags of e including inherited ones.
func (e *Env) Tags() map[string]string {
	if e.parent == nil {
		mts := make(map[string]string, len(e.tags))
		maps.Copy(mts, e.tags)
		return mts
	}
	mts := e.parent.Tags()
	for k := range e.delt {
		delete(mts, k)
	}
	maps.Copy(mts, e.tags)
	return mts
}

// HostOSName returns the operating system name of the host the same way a
// JVM reports it in the os.name property, e.g. "Mac OS X" or "Windows 10".
// The [HostOSTag] takes precedence over the name derived from runtime.GOOS.
// The name is looked up on each call.
func (e *Env) HostOSName() string {
	if n, ok := e.Tag(HostOSTag); ok && n != "" {
		return n
	}
	return goosOSName(runtime.GOOS)
}

func goosOSName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "linux", "android":
		return "Linux"
	case "darwin":
		return "Mac OS X"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "solaris", "illumos":
		return "SunOS"
	case "aix":
		return "AIX"
	}
	return goos
}
