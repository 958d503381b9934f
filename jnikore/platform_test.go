package jnikore

import (
	"errors"
	"fmt"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestTargetMachine_classify(t *testing.T) {
	win64 := TargetMachine{OS: Windows, Arch: X86_64}
	if s := testerr.Shall1(win64.OSFamilyName()).BeNil(t); s != "windows" {
		t.Errorf("os family '%s'", s)
	}
	if s := win64.ArchitectureString(); s != "x86-64" {
		t.Errorf("architecture '%s'", s)
	}
	if s := testerr.Shall1(win64.VariantName()).BeNil(t); s != "windows-x86-64" {
		t.Errorf("variant name '%s'", s)
	}
	lin32 := TargetMachine{OS: Linux, Arch: X86}
	if s := testerr.Shall1(lin32.VariantName()).BeNil(t); s != "linux-x86" {
		t.Errorf("variant name '%s'", s)
	}
	mac := TargetMachine{OS: MacOS}
	if s := testerr.Shall1(mac.VariantName()).BeNil(t); s != "macos-x86-64" {
		t.Errorf("variant name '%s'", s)
	}
}

func TestTargetMachine_unknown(t *testing.T) {
	tm := TargetMachine{OS: "freebsd", Arch: X86_64}
	_, err := tm.OSFamilyName()
	var upe UnknownPlatformError
	if !errors.As(err, &upe) {
		t.Fatalf("unexpected error %v", err)
	}
	if upe.Family != "freebsd" {
		t.Errorf("error has family '%s'", upe.Family)
	}
	if _, err = tm.VariantName(); !errors.As(err, &upe) {
		t.Errorf("variant name did not fail with unknown platform: %v", err)
	}
	if msg := err.Error(); msg != "unknown operating system family 'freebsd'" {
		t.Errorf("error message '%s'", msg)
	}
}

func TestTargetMachine_TargetsHost(t *testing.T) {
	env := new(Env)
	env.SetTag(HostOSTag, "macosx")
	if !(TargetMachine{OS: MacOS}).TargetsHost(env) {
		t.Error("macos does not target macosx host")
	}
	if (TargetMachine{OS: Windows}).TargetsHost(env) {
		t.Error("windows targets macosx host")
	}
	if (TargetMachine{OS: "plan9"}).TargetsHost(env) {
		t.Error("unknown family targets host")
	}

	env.SetTag(HostOSTag, "Mac OS X")
	if !(TargetMachine{OS: MacOS, Arch: X86}).TargetsHost(env) {
		t.Error("macos does not target 'Mac OS X' host")
	}
	env.SetTag(HostOSTag, "Windows 10")
	if !(TargetMachine{OS: Windows}).TargetsHost(env) {
		t.Error("windows does not target 'Windows 10' host")
	}
	if (TargetMachine{OS: Linux}).TargetsHost(env) {
		t.Error("linux targets 'Windows 10' host")
	}
}

func TestTargetMachine_TargetsHost_reread(t *testing.T) {
	env := new(Env)
	tm := TargetMachine{OS: Linux}
	env.SetTag(HostOSTag, "Linux")
	if !tm.TargetsHost(env) {
		t.Fatal("linux does not target Linux host")
	}
	env.SetTag(HostOSTag, "Windows 11")
	if tm.TargetsHost(env) {
		t.Error("host name was not read again")
	}
}

func TestLibraryFileName(t *testing.T) {
	for _, c := range []struct {
		os   OSFamily
		file string
	}{
		{Linux, "libfoo.so"},
		{Windows, "foo.dll"},
		{MacOS, "libfoo.dylib"},
	} {
		t.Run(c.os.String(), func(t *testing.T) {
			f := testerr.Shall1(LibraryFileName("foo", c.os)).BeNil(t)
			if f != c.file {
				t.Errorf("file name '%s', want '%s'", f, c.file)
			}
		})
	}
	_, err := LibraryFileName("foo", "haiku")
	if !errors.As(err, new(UnknownPlatformError)) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestParseTargetMachine(t *testing.T) {
	tm := testerr.Shall1(ParseTargetMachine("linux-x86-64")).BeNil(t)
	if tm != (TargetMachine{OS: Linux, Arch: X86_64}) {
		t.Errorf("parsed %+v", tm)
	}
	tm = testerr.Shall1(ParseTargetMachine("darwin-x86")).BeNil(t)
	if tm != (TargetMachine{OS: MacOS, Arch: X86}) {
		t.Errorf("parsed %+v", tm)
	}
	if _, err := ParseTargetMachine("sunos-x86"); !errors.As(err, new(UnknownPlatformError)) {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := ParseTargetMachine("linux-arm64"); err == nil {
		t.Error("parsed unsupported architecture")
	}
	if _, err := ParseTargetMachine("linux"); err == nil {
		t.Error("parsed variant without architecture")
	}
}

func ExampleTargetMachine_VariantName() {
	for _, tm := range []TargetMachine{
		{OS: Windows, Arch: X86},
		{OS: Linux, Arch: X86_64},
		{OS: MacOS, Arch: X86_64},
	} {
		vn, _ := tm.VariantName()
		lf, _ := LibraryFileName("darklaf", tm.OS)
		fmt.Println(vn, lf)
	}
	// Output:
	// windows-x86 darklaf.dll
	// linux-x86-64 libdarklaf.so
	// macos-x86-64 libdarklaf.dylib
}
