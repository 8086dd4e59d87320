package js

// Interner assigns a stable, comparable Name to each distinct identifier
// spelling seen during a parse (spec.md §2 component 2, "Arena +
// Interner"). Two identifiers compare equal iff their Names are equal,
// which is what the scope stack (scope.go) relies on for set membership
// instead of comparing byte slices.
//
// The teacher corpus has no dedicated string-interning type to ground
// this on (see DESIGN.md); its shape follows the same "name to small
// integer, slice for reverse lookup" idiom the teacher's own Hash type
// used for keyword lookup (js/hash.go in the retrieved pack).
type Interner struct {
	ids     map[string]Name
	strings []string
}

// NewInterner returns an empty Interner. Index 0 is never assigned so
// the zero Name can mean "no identifier".
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]Name, 64), strings: []string{""}}
}

// Intern returns the Name for s, assigning a new one on first sight.
func (in *Interner) Intern(s string) Name {
	if n, ok := in.ids[s]; ok {
		return n
	}
	n := Name(len(in.strings))
	in.strings = append(in.strings, s)
	in.ids[s] = n
	return n
}

// InternBytes is Intern without forcing the caller to allocate a string
// up front unless the spelling hasn't been seen before.
func (in *Interner) InternBytes(b []byte) Name {
	if n, ok := in.ids[string(b)]; ok { // string(b) here does not escape: see strings.Builder-style map lookup
		return n
	}
	return in.Intern(string(b))
}

// String returns the spelling a Name was interned from.
func (in *Interner) String(n Name) string {
	if int(n) >= len(in.strings) {
		return ""
	}
	return in.strings[n]
}

// WellKnown is the small table of identifiers the parser and the
// downstream bytecode compiler both need to compare against by identity
// rather than by re-interning a string literal at every use site
// (spec.md §6, "Interner contract consumed").
type WellKnown struct {
	UseStrict       Name
	Arguments       Name
	Eval            Name
	Get             Name
	Set             Name
	Of              Name
	As              Name
	From            Name
	Target          Name
	Prototype       Name
	Constructor     Name
	Static          Name
	Default         Name
	Null            Name
	UnderscoreProto Name

	Generator              Name // @generator
	GeneratorState         Name // @generatorState
	GeneratorValue         Name // @generatorValue
	GeneratorResumeMode    Name // @generatorResumeMode
	StarDefault            Name // @starDefault
}

// NewWellKnown interns the fixed table of names every parse needs.
func NewWellKnown(in *Interner) *WellKnown {
	return &WellKnown{
		UseStrict:       in.Intern("use strict"),
		Arguments:       in.Intern("arguments"),
		Eval:            in.Intern("eval"),
		Get:             in.Intern("get"),
		Set:             in.Intern("set"),
		Of:              in.Intern("of"),
		As:              in.Intern("as"),
		From:            in.Intern("from"),
		Target:          in.Intern("target"),
		Prototype:       in.Intern("prototype"),
		Constructor:     in.Intern("constructor"),
		Static:          in.Intern("static"),
		Default:         in.Intern("default"),
		Null:            in.Intern("null"),
		UnderscoreProto: in.Intern("__proto__"),

		Generator:           in.Intern("@generator"),
		GeneratorState:      in.Intern("@generatorState"),
		GeneratorValue:      in.Intern("@generatorValue"),
		GeneratorResumeMode: in.Intern("@generatorResumeMode"),
		StarDefault:         in.Intern("@starDefault"),
	}
}

// Arena is, in this Go port, deliberately just the Go heap: AST nodes
// returned by FullBuilder are ordinary heap-allocated structs owned by
// their parent node, collected once the Result the parser returns is
// dropped. spec.md's arena exists because the original embeds in a VM
// with its own GC-scanned object heap and wants parse-scoped bulk
// freeing; a Go parser has no such constraint; see DESIGN.md for why
// this component is kept as documentation rather than a manual
// allocator.
type Arena struct {
	interner *Interner
}

// NewArena returns an Arena backed by its own fresh Interner.
func NewArena() *Arena {
	return &Arena{interner: NewInterner()}
}

// Interner returns the arena's identifier interner.
func (a *Arena) Interner() *Interner { return a.interner }
