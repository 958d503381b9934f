package gomkjni

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.fractalqb.de/fractalqb/gomkjni/jnikore"
	"git.fractalqb.de/fractalqb/sllm/v3"
)

// WriteTracer writes trace messages as text lines to W.
type WriteTracer struct {
	W   io.Writer
	Log jnikore.TraceLog
}

var _ jnikore.Tracer = (*WriteTracer)(nil)

func DefaultTracer() *WriteTracer {
	return &WriteTracer{W: os.Stderr, Log: jnikore.DefaultTraceLog}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = jnikore.TraceWarn
	case "info", "i":
		tr.Log = jnikore.TraceWarn | jnikore.TraceInfo
	case "debug", "d":
		tr.Log = jnikore.TraceWarn | jnikore.TraceInfo | jnikore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr *WriteTracer) Debug(t *jnikore.Trace, msg string, args ...any) {
	if tr.Log&jnikore.TraceDebug == 0 {
		return
	}
	tr.message(t, "DEBUG", msg, args)
}

func (tr *WriteTracer) Info(t *jnikore.Trace, msg string, args ...any) {
	if tr.Log&(jnikore.TraceInfo|jnikore.TraceDebug) == 0 {
		return
	}
	tr.message(t, "INFO ", msg, args)
}

func (tr *WriteTracer) Warn(t *jnikore.Trace, msg string, args ...any) {
	if tr.Log == 0 {
		return
	}
	tr.message(t, "WARN ", msg, args)
}

func (tr *WriteTracer) message(t *jnikore.Trace, level, msg string, args []any) {
	fmt.Fprintf(tr.W, "%s\t  %s ", t.TopTag(), level)
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) logVariants() bool {
	return tr.Log&(jnikore.TraceInfo|jnikore.TraceDebug) != 0
}

func (tr *WriteTracer) ConfigureLibrary(t *jnikore.Trace, lib *jnikore.Library) {
	if !tr.logVariants() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t{ configure library '%s' in %s with %d targets\n",
		t.TopTag(),
		lib.Name(),
		lib.Dir,
		lib.Targets.Len(),
	)
}

func (tr *WriteTracer) ConfigureVariant(t *jnikore.Trace, v *jnikore.Variant) {
	if !tr.logVariants() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  variant %s -> %s %s\n",
		t.TopTag(),
		v.Name,
		v.LibraryFile,
		t.Path(),
	)
}

func (tr *WriteTracer) SkipVariant(t *jnikore.Trace, v *jnikore.Variant, reason string) {
	if tr.Log&jnikore.TraceDebug == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t. skip variant %s: %s\n", t.TopTag(), v.Name, reason)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
