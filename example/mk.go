// This is an example build script that configures the native part of a JNI
// library with gomkjni.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"git.fractalqb.de/fractalqb/gomkjni"
	"git.fractalqb.de/fractalqb/gomkjni/jnikore"
)

var (
	tracer = gomkjni.DefaultTracer()

	hostOnly bool
)

func flags() {
	flag.BoolVar(&hostOnly, "host", hostOnly, "Only configure variants for this host")
	fTrace := flag.String("trace", "", "Set trace level")
	flag.Parse()

	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flags()

	// The library in current working dir
	lib := gomkjni.NewLibrary("")

	// Start editing the library, recovering panics to errors
	err := gomkjni.Edit(lib, func(lib gomkjni.LibraryEd) {
		lib.Name("darklaf-windows").
			Targets("windows-x86", "windows-x86-64").
			JVMLib(gomkjni.Dep("com.github.weisj:darklaf-native-utils:3.0.2")).
			NativeLib(gomkjni.Dep("com.github.weisj:darklaf-native-utils:3.0.2")).
			Compile(func(c *jnikore.SourceCompile) { c.AddArgs("-DUNICODE") }).
			Optimized()
	})
	if err != nil {
		log.Fatal("editing library:", err)
	}

	tr := jnikore.NewTrace(context.Background(), tracer)
	variants, err := gomkjni.Configure(lib, hostOnly, tr, nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range variants {
		args, err := v.Compile.CompilerArgs()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(v.Name, v.LibraryFile, args)
	}
}
