package jnikore

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
)

// Tracer receives the messages and events of configuring libraries. Messages
// are templates that reference their arguments in backticks, e.g.
// "configure `variant`", followed by key/value pairs.
type Tracer interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	ConfigureLibrary(t *Trace, lib *Library)
	ConfigureVariant(t *Trace, v *Variant)
	SkipVariant(t *Trace, v *Variant, reason string)
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// Trace tracks the path of objects being configured. A nil *Trace discards
// everything.
type Trace struct {
	root *traceRoot
	up   *Trace
	obj  any
	id   uint64
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Trace{root: &traceRoot{ctx: ctx, tr: t}}
}

// Ctx returns the context the trace was created with. Configuration stops
// once it is done.
func (t *Trace) Ctx() context.Context {
	if t == nil {
		return context.Background()
	}
	return t.root.ctx
}

func (t *Trace) tracer() Tracer {
	if t == nil {
		return nil
	}
	return t.root.tr
}

func (t *Trace) Debug(msg string, args ...any) {
	if tr := t.tracer(); tr != nil {
		tr.Debug(t, msg, args...)
	}
}

func (t *Trace) Info(msg string, args ...any) {
	if tr := t.tracer(); tr != nil {
		tr.Info(t, msg, args...)
	}
}

func (t *Trace) Warn(msg string, args ...any) {
	if tr := t.tracer(); tr != nil {
		tr.Warn(t, msg, args...)
	}
}

func (t *Trace) configureLibrary(lib *Library) {
	if tr := t.tracer(); tr != nil {
		tr.ConfigureLibrary(t, lib)
	}
}

func (t *Trace) configureVariant(v *Variant) {
	if tr := t.tracer(); tr != nil {
		tr.ConfigureVariant(t, v)
	}
}

func (t *Trace) skipVariant(v *Variant, reason string) {
	if tr := t.tracer(); tr != nil {
		tr.SkipVariant(t, v, reason)
	}
}

func (t *Trace) TopTag() string {
	if t == nil {
		return ""
	}
	switch t.obj.(type) {
	case *Library:
		return fmt.Sprintf("{%d}", t.id)
	case *Variant:
		return fmt.Sprintf("[%d]", t.id)
	case nil:
		return ""
	}
	return fmt.Sprintf("!%T!", t.obj)
}

func (t *Trace) Path() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for ; t != nil; t = t.up {
		sb.WriteString(t.TopTag())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *Trace) String() string { return t.Path() }

func (t *Trace) push(obj any) *Trace {
	if t == nil {
		return nil
	}
	return &Trace{
		root: t.root,
		up:   t,
		obj:  obj,
		id:   t.root.idSeq.Add(1),
	}
}

type traceRoot struct {
	ctx   context.Context
	tr    Tracer
	idSeq atomic.Uint64
}
