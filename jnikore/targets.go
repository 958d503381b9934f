package jnikore

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var knownFamilies = [...]OSFamily{Windows, Linux, MacOS}

const targetSlots = uint(len(knownFamilies) * 2)

func targetIndex(t TargetMachine) (uint, error) {
	for i, f := range knownFamilies {
		if t.OS == f {
			idx := uint(2 * i)
			if !t.Arch.Is32Bit() {
				idx++
			}
			return idx, nil
		}
	}
	return 0, UnknownPlatformError{Family: t.OS.String()}
}

func targetAt(idx uint) TargetMachine {
	t := TargetMachine{OS: knownFamilies[idx/2], Arch: X86}
	if idx%2 == 1 {
		t.Arch = X86_64
	}
	return t
}

// TargetSet is a set of target machines. Iteration order is windows, linux,
// macos with x86 before x86-64.
type TargetSet struct {
	bits *bitset.BitSet
}

func NewTargetSet(ts ...TargetMachine) (*TargetSet, error) {
	set := &TargetSet{bits: bitset.New(targetSlots)}
	if err := set.Add(ts...); err != nil {
		return nil, err
	}
	return set, nil
}

// DefaultTargets returns the targets a new [Library] starts with: windows
// x86 and x86-64, linux x86-64 and macos x86-64.
func DefaultTargets() *TargetSet {
	set, _ := NewTargetSet(
		TargetMachine{OS: Windows, Arch: X86},
		TargetMachine{OS: Windows, Arch: X86_64},
		TargetMachine{OS: Linux, Arch: X86_64},
		TargetMachine{OS: MacOS, Arch: X86_64},
	)
	return set
}

// ParseTargets parses variant names into a new set.
func ParseTargets(variants ...string) (*TargetSet, error) {
	set, _ := NewTargetSet()
	for _, v := range variants {
		t, err := ParseTargetMachine(v)
		if err != nil {
			return nil, fmt.Errorf("parse targets: %w", err)
		}
		if err = set.Add(t); err != nil {
			return nil, fmt.Errorf("parse targets: %w", err)
		}
	}
	return set, nil
}

func (s *TargetSet) init() {
	if s.bits == nil {
		s.bits = bitset.New(targetSlots)
	}
}

// Add adds all ts to s. Targets of unrecognized families are rejected with
// an [UnknownPlatformError] and nothing is added.
func (s *TargetSet) Add(ts ...TargetMachine) error {
	s.init()
	idxs := make([]uint, len(ts))
	for i, t := range ts {
		idx, err := targetIndex(t)
		if err != nil {
			return err
		}
		idxs[i] = idx
	}
	for _, idx := range idxs {
		s.bits.Set(idx)
	}
	return nil
}

func (s *TargetSet) Remove(t TargetMachine) {
	if s == nil || s.bits == nil {
		return
	}
	if idx, err := targetIndex(t); err == nil {
		s.bits.Clear(idx)
	}
}

func (s *TargetSet) Has(t TargetMachine) bool {
	idx, err := targetIndex(t)
	if err != nil || s == nil || s.bits == nil {
		return false
	}
	return s.bits.Test(idx)
}

func (s *TargetSet) Len() int {
	if s == nil || s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s *TargetSet) Targets() (ts []TargetMachine) {
	if s == nil || s.bits == nil {
		return nil
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		ts = append(ts, targetAt(i))
	}
	return ts
}
