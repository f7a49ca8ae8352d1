package common

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrUnknownSymbol is returned when a name (or a part of a flags expression) is not a member of the category.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidEnum is returned when a member table violates the category invariants at construction.
	ErrInvalidEnum = errors.New("invalid enumeration")
)

// Integer is the constraint satisfied by every enumeration type in this package.
// All categories are int64-backed so combined key codes and modifier masks never truncate.
type Integer interface {
	~int64
}

// Member is a single named constant of an enumeration.
type Member[T Integer] struct {
	// Name is the Go-facing symbol, e.g. "Escape" for KeyEscape.
	Name string

	// EngineName is the engine's global identifier, e.g. "KEY_ESCAPE".
	EngineName string

	// Value is the integer the engine ABI assigns to this member.
	Value T

	// Alias marks a member that intentionally shares its value with an earlier member.
	Alias bool

	// Composite marks a flags member that is a documented OR of several bits.
	Composite bool

	// Sentinel marks an upper-bound marker such as Max. It is not a real member.
	Sentinel bool
}

// Entry is the untyped view of a Member, used where categories of different types are handled together.
type Entry struct {
	Name       string `json:"name" yaml:"name"`
	EngineName string `json:"engine_name" yaml:"engine_name"`
	Value      int64  `json:"value" yaml:"value"`
	Alias      bool   `json:"alias,omitempty" yaml:"alias,omitempty"`
	Composite  bool   `json:"composite,omitempty" yaml:"composite,omitempty"`
	Sentinel   bool   `json:"sentinel,omitempty" yaml:"sentinel,omitempty"`
}

// Category is the type-erased contract every Enum satisfies.
// It lets a registry hold enumerations of different Go types side by side.
type Category interface {
	// Name returns the category name, e.g. "Key" or "Variant.Type".
	Name() string

	// IsFlags reports whether members are meant to be combined with bitwise OR.
	IsFlags() bool

	// Entries returns every member in declaration order.
	Entries() []Entry

	// LookupValue resolves a symbol (Go or engine name, case-insensitive) to its value.
	LookupValue(symbol string) (int64, error)

	// ValueNames returns every member name declared with the given value, in declaration order.
	ValueNames(value int64) []string

	// FormatValue renders a value using member names, decomposing flags into single bits.
	FormatValue(value int64, engineNames bool) string

	// ParseValue is the inverse of FormatValue. Flags categories accept "A|B" expressions.
	ParseValue(expr string) (int64, error)
}

// EnumBuilderOption is a functional option for configuring an Enum.
type EnumBuilderOption func(s *enumSettings)

type enumSettings struct {
	flags bool
}

// AsFlags marks the enumeration as a flags set.
// Every non-zero member must then be a single bit unless it is marked Composite.
//
// Returns:
//   - EnumBuilderOption: option function to apply
func AsFlags() EnumBuilderOption {
	return func(s *enumSettings) {
		s.flags = true
	}
}

// Enum is an immutable, closed enumeration over T.
// It is safe for concurrent use by any number of readers.
type Enum[T Integer] struct {
	name    string
	flags   bool
	members []Member[T]

	// byName maps a case-folded Go or engine name to the member index.
	byName map[string]int

	// byValue maps a value to the indexes of every member declared with it.
	byValue map[T][]int

	// sentinel is the index of the highest sentinel member, or -1.
	sentinel int
}

var _ Category = &Enum[int64]{}

// NewEnum builds an enumeration from a member table and validates its invariants.
// The member slice is copied, so later changes by the caller do not affect the enumeration.
//
// Parameters:
//   - name: the category name
//   - members: the member table in declaration order
//   - options: functional options (AsFlags)
//
// Returns:
//   - *Enum[T]: the enumeration
//   - error: ErrInvalidEnum wrapped with the violated invariant
func NewEnum[T Integer](name string, members []Member[T], options ...EnumBuilderOption) (*Enum[T], error) {
	var settings enumSettings
	for _, opt := range options {
		opt(&settings)
	}

	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrInvalidEnum)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: %s has no members", ErrInvalidEnum, name)
	}

	e := &Enum[T]{
		name:     name,
		flags:    settings.flags,
		members:  append([]Member[T](nil), members...),
		byName:   make(map[string]int, len(members)*2),
		byValue:  make(map[T][]int, len(members)),
		sentinel: -1,
	}

	for i, m := range e.members {
		if m.Name == "" || m.EngineName == "" {
			return nil, fmt.Errorf("%w: %s member %d has an empty name", ErrInvalidEnum, name, i)
		}
		for _, n := range []string{m.Name, m.EngineName} {
			key := foldName(n)
			if prev, ok := e.byName[key]; ok && prev != i {
				return nil, fmt.Errorf("%w: %s.%s collides with %s", ErrInvalidEnum, name, n, e.members[prev].Name)
			}
			e.byName[key] = i
		}

		if existing := e.byValue[m.Value]; len(existing) > 0 && !m.Alias {
			return nil, fmt.Errorf("%w: %s.%s repeats the value of %s without being marked as an alias",
				ErrInvalidEnum, name, m.Name, e.members[existing[0]].Name)
		}
		e.byValue[m.Value] = append(e.byValue[m.Value], i)

		if e.flags && m.Value != 0 && !m.Composite && bits.OnesCount64(uint64(m.Value)) != 1 {
			return nil, fmt.Errorf("%w: %s.%s (%d) is not a single bit", ErrInvalidEnum, name, m.Name, int64(m.Value))
		}

		if m.Sentinel && (e.sentinel < 0 || m.Value > e.members[e.sentinel].Value) {
			e.sentinel = i
		}
	}

	if e.sentinel >= 0 {
		limit := e.members[e.sentinel].Value
		for _, m := range e.members {
			if !m.Sentinel && m.Value >= limit {
				return nil, fmt.Errorf("%w: %s.%s (%d) is not below sentinel %s (%d)",
					ErrInvalidEnum, name, m.Name, int64(m.Value), e.members[e.sentinel].Name, int64(limit))
			}
		}
	}

	return e, nil
}

// MustEnum is like NewEnum but panics on an invalid table.
// It is intended for the static tables declared in this package.
func MustEnum[T Integer](name string, members []Member[T], options ...EnumBuilderOption) *Enum[T] {
	e, err := NewEnum(name, members, options...)
	if err != nil {
		panic(fmt.Sprintf("failed to build enumeration: %v", err))
	}
	return e
}

func (e *Enum[T]) Name() string {
	return e.name
}

func (e *Enum[T]) IsFlags() bool {
	return e.flags
}

// Members returns a copy of the member table in declaration order.
func (e *Enum[T]) Members() []Member[T] {
	return append([]Member[T](nil), e.members...)
}

// Lookup resolves a Go name or engine name to its value. Matching is case-insensitive.
//
// Parameters:
//   - symbol: the member name, e.g. "Escape", "KEY_ESCAPE" or "key_escape"
//
// Returns:
//   - T: the member value
//   - error: ErrUnknownSymbol if the symbol is not a member of this category
func (e *Enum[T]) Lookup(symbol string) (T, error) {
	i, ok := e.byName[foldName(strings.TrimSpace(symbol))]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a member of %s", ErrUnknownSymbol, symbol, e.name)
	}
	return e.members[i].Value, nil
}

// Contains reports whether at least one member is declared with the value.
func (e *Enum[T]) Contains(value T) bool {
	return len(e.byValue[value]) > 0
}

// Names returns the Go names of every member declared with the value, in declaration order.
// The result is empty when no member has the value.
func (e *Enum[T]) Names(value T) []string {
	idx := e.byValue[value]
	names := make([]string, 0, len(idx))
	for _, i := range idx {
		names = append(names, e.members[i].Name)
	}
	return names
}

// NameOf returns the first declared Go name for the value, or "Category(n)" when there is none.
func (e *Enum[T]) NameOf(value T) string {
	if idx := e.byValue[value]; len(idx) > 0 {
		return e.members[idx[0]].Name
	}
	return fmt.Sprintf("%s(%d)", e.name, int64(value))
}

// EngineNameOf returns the first declared engine name for the value, or "Category(n)" when there is none.
func (e *Enum[T]) EngineNameOf(value T) string {
	if idx := e.byValue[value]; len(idx) > 0 {
		return e.members[idx[0]].EngineName
	}
	return fmt.Sprintf("%s(%d)", e.name, int64(value))
}

// Max returns the upper-bound sentinel of the category.
//
// Returns:
//   - T: the sentinel value
//   - bool: false if the category declares no sentinel
func (e *Enum[T]) Max() (T, bool) {
	if e.sentinel < 0 {
		return 0, false
	}
	return e.members[e.sentinel].Value, true
}

// Format renders the value with Go names.
// For flags categories a value without an exact member is decomposed into its single-bit members
// joined by "|"; bits that no member covers are appended in hex.
func (e *Enum[T]) Format(value T) string {
	return e.format(value, false)
}

// FormatEngine is Format using engine names.
func (e *Enum[T]) FormatEngine(value T) string {
	return e.format(value, true)
}

func (e *Enum[T]) format(value T, engineNames bool) string {
	pick := func(m Member[T]) string {
		if engineNames {
			return m.EngineName
		}
		return m.Name
	}

	if idx := e.byValue[value]; len(idx) > 0 {
		return pick(e.members[idx[0]])
	}
	if !e.flags || value == 0 {
		return fmt.Sprintf("%s(%d)", e.name, int64(value))
	}

	var parts []string
	var covered T
	for _, m := range e.members {
		if m.Composite || m.Value == 0 || covered&m.Value != 0 {
			continue
		}
		if value&m.Value == m.Value {
			parts = append(parts, pick(m))
			covered |= m.Value
		}
	}
	if rest := value &^ covered; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint64(rest)))
	}
	return strings.Join(parts, "|")
}

// Parse is the inverse of Format.
// Flags categories accept "|"-joined member names and OR them together; any unknown part fails the whole parse.
//
// Parameters:
//   - expr: a member name, or for flags categories an expression like "Shift|Ctrl"
//
// Returns:
//   - T: the resolved value
//   - error: ErrUnknownSymbol if any part is not a member
func (e *Enum[T]) Parse(expr string) (T, error) {
	if !e.flags {
		return e.Lookup(expr)
	}
	var v T
	for _, part := range strings.Split(expr, "|") {
		pv, err := e.Lookup(strings.TrimSpace(part))
		if err != nil {
			return 0, err
		}
		v |= pv
	}
	return v, nil
}

func (e *Enum[T]) Entries() []Entry {
	entries := make([]Entry, len(e.members))
	for i, m := range e.members {
		entries[i] = Entry{
			Name:       m.Name,
			EngineName: m.EngineName,
			Value:      int64(m.Value),
			Alias:      m.Alias,
			Composite:  m.Composite,
			Sentinel:   m.Sentinel,
		}
	}
	return entries
}

func (e *Enum[T]) LookupValue(symbol string) (int64, error) {
	v, err := e.Lookup(symbol)
	return int64(v), err
}

func (e *Enum[T]) ValueNames(value int64) []string {
	return e.Names(T(value))
}

func (e *Enum[T]) FormatValue(value int64, engineNames bool) string {
	return e.format(T(value), engineNames)
}

func (e *Enum[T]) ParseValue(expr string) (int64, error) {
	v, err := e.Parse(expr)
	return int64(v), err
}

// Has reports whether every bit of flag is set in value.
func Has[T Integer](value, flag T) bool {
	return value&flag == flag
}

// foldName case-folds a symbol for lookup.
// A new Caser is created per call because cases.Caser keeps state and must not be shared between goroutines.
func foldName(s string) string {
	return cases.Fold().String(s)
}
