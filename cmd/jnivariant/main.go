// jnivariant prints the native variants of a JNI library: the variant name,
// the shared library file name, whether the variant targets the host and
// the optimization flags of the configured compiler.
//
// Targets are given as variant names on the command line, read from a YAML
// file with --targets or default to the targets gomkjni uses for new
// libraries. A target file without targets only sets the library name.
// Target file:
//
//	name: darklaf-windows
//	targets:
//	  - windows-x86
//	  - windows-x86-64
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"git.fractalqb.de/fractalqb/gomkjni"
	"git.fractalqb.de/fractalqb/gomkjni/jnikore"
)

type targetFile struct {
	Name    string   `yaml:"name"`
	Targets []string `yaml:"targets"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var (
		name, targets, cc, trace string
		hostOnly, optimized      bool
	)
	flagSet := pflag.NewFlagSet("jnivariant", pflag.ContinueOnError)
	flagSet.StringVar(&name, "name", "", "library name (default: base name of the working directory)")
	flagSet.StringVar(&targets, "targets", "", "YAML file with library name and targets")
	flagSet.StringVar(&cc, "cc", "", "C compiler (default: $CC or cc)")
	flagSet.StringVar(&trace, "trace", "", "trace level: off, warn, info, debug")
	flagSet.BoolVar(&hostOnly, "host", false, "only print variants that target the host")
	flagSet.BoolVar(&optimized, "optimized", true, "add optimization flags")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	tracer := gomkjni.DefaultTracer()
	if err := tracer.ParseLogFlag(trace); err != nil {
		return err
	}
	tr := jnikore.NewTrace(context.Background(), tracer)

	lib := jnikore.NewLibrary("")
	if targets != "" {
		tf, err := readTargetFile(targets)
		if err != nil {
			return err
		}
		if tf.Name != "" {
			lib.SetName(tf.Name)
		}
		if len(tf.Targets) > 0 {
			if lib.Targets, err = jnikore.ParseTargets(tf.Targets...); err != nil {
				return fmt.Errorf("%s: %w", targets, err)
			}
		}
	}
	if vs := flagSet.Args(); len(vs) > 0 {
		set, err := jnikore.ParseTargets(vs...)
		if err != nil {
			return err
		}
		lib.Targets = set
	}
	if name != "" {
		lib.SetName(name)
	}
	if optimized {
		lib.ConfigureCompile(jnikore.OptimizedBinary)
	}

	env := jnikore.DefaultEnv(tr)
	if cc != "" {
		env.SetTag(jnikore.CCTag, cc)
	}
	variants, err := gomkjni.Configure(lib, hostOnly, tr, env)
	if err != nil {
		return err
	}
	return writeVariants(out, variants)
}

func readTargetFile(name string) (tf targetFile, err error) {
	r, err := os.Open(name)
	if err != nil {
		return tf, err
	}
	defer r.Close()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err = dec.Decode(&tf); err != nil {
		return tf, fmt.Errorf("%s: %w", name, err)
	}
	return tf, nil
}

func writeVariants(w io.Writer, vs []*jnikore.Variant) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tLIBRARY\tHOST\tFLAGS")
	for _, v := range vs {
		args, err := v.Compile.CompilerArgs()
		if err != nil {
			return fmt.Errorf("variant %s: %w", v.Name, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n",
			v.Name,
			v.LibraryFile,
			v.TargetsHost,
			strings.Join(args, " "),
		)
	}
	return tw.Flush()
}
