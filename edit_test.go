package gomkjni

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/gomkjni/jnikore"
	"git.fractalqb.de/fractalqb/testerr"
)

func TestEdit(t *testing.T) {
	lib := NewLibrary("testdata/darklaf-macos")
	testerr.Shall(Edit(lib, func(lib LibraryEd) {
		lib.Name("darklaf-macos").
			Targets("macos-x86-64").
			AddTarget(jnikore.MacOS, jnikore.X86).
			JVMLib(Dep("com.github.weisj:darklaf-native-utils:3.0.2")).
			NativeLib(
				Dep("com.github.weisj:darklaf-native-utils:3.0.2"),
				Dep("com.github.weisj:darklaf-native-utils-macos:3.0.2"),
			).
			Optimized()
	})).BeNil(t)
	if l := lib.Targets.Len(); l != 2 {
		t.Errorf("library has %d targets", l)
	}
	if n := lib.Deps.JVM()[0].Notation(); n != "com.github.weisj:darklaf-native-utils:3.0.2" {
		t.Errorf("jvm dependency %s", n)
	}
	caps := lib.Deps.Native()[0].RequiredCapabilities
	if !slices.Equal(caps, []string{"com.github.weisj:darklaf-native-utils-macos:3.0.2"}) {
		t.Errorf("capabilities %v", caps)
	}

	env := new(Env)
	env.SetTag(jnikore.CCTag, "clang")
	env.SetTag(jnikore.HostOSTag, "Mac OS X")
	vs := testerr.Shall1(Configure(lib, true, nil, env)).BeNil(t)
	if len(vs) != 2 {
		t.Fatalf("%d host variants", len(vs))
	}
	if vs[0].Name != "macos-x86" || vs[1].LibraryFile != "libdarklaf-macos.dylib" {
		t.Errorf("variants %s %s", vs[0], vs[1])
	}
	args := testerr.Shall1(vs[1].Compile.CompilerArgs()).BeNil(t)
	if !slices.Equal(args, []string{"-O2"}) {
		t.Errorf("compiler args %v", args)
	}
}

func TestEdit_recoverError(t *testing.T) {
	lib := NewLibrary("native")
	err := Edit(lib, func(lib LibraryEd) {
		lib.Targets("linux-x86-64", "haiku-x86")
		t.Error("editing continued after bad target")
	})
	if !errors.As(err, new(jnikore.UnknownPlatformError)) {
		t.Errorf("unexpected error %v", err)
	}
	err = Edit(lib, func(LibraryEd) { panic("stop") })
	if err == nil || err.Error() != "stop" {
		t.Errorf("unexpected error %v", err)
	}
	if !lib.TryLock() {
		t.Fatal("library still locked after edit")
	}
	lib.Unlock()
}

func TestConfigure_trace(t *testing.T) {
	lib := NewLibrary("native")
	var out strings.Builder
	tr := &WriteTracer{W: &out, Log: jnikore.TraceInfo}
	env := new(Env)
	env.SetTag(jnikore.HostOSTag, "Linux")
	vs := testerr.Shall1(Configure(lib, false, jnikore.NewTrace(context.Background(), tr), env)).BeNil(t)
	if len(vs) != 4 {
		t.Fatalf("%d variants", len(vs))
	}
	log := out.String()
	if !strings.Contains(log, "configure library 'native'") {
		t.Errorf("missing library in trace:\n%s", log)
	}
	if !strings.Contains(log, "variant linux-x86-64 -> libnative.so") {
		t.Errorf("missing variant in trace:\n%s", log)
	}
}
