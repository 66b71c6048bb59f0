package whirl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pavlosg/whirl/log"
)

// Serialized form: '#', a 4-character tag, '`', the generator's state
// body, '`'. A wrapper prefixes its marker byte between '#' and the
// inner generator's full serialized form.
const tagLength = 4

// Registry maps 4-character tags to canonical generator instances and
// back. It carries no tags until callers register them; populate it at
// startup, before any concurrent use.
type Registry struct {
	byTag    map[string]Source
	byType   map[reflect.Type]string
	wrappers map[byte]func(Source) (Source, error)
}

func NewRegistry() *Registry {
	return &Registry{
		byTag:    make(map[string]Source),
		byType:   make(map[reflect.Type]string),
		wrappers: make(map[byte]func(Source) (Source, error)),
	}
}

// NewBuiltinRegistry returns a registry with every built-in generator
// type and wrapper registered.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister("DisR", NewDistinctState(0))
	r.mustRegister("LasR", NewLaserState(0, 0))
	r.mustRegister("RTrR", NewRomuTrioState(0, 0, 0))
	if err := r.RegisterWrapper(ReverserMarker, func(inner Source) (Source, error) {
		return NewReverser(inner)
	}); err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) mustRegister(tag string, canonical Source) {
	if err := r.Register(tag, canonical); err != nil {
		panic(err)
	}
}

// Register binds tag to canonical's concrete type, in both directions.
// It fails if the tag is malformed, already bound to another type, or
// the type is already bound to another tag.
func (r *Registry) Register(tag string, canonical Source) error {
	if len(tag) != tagLength {
		return fmt.Errorf("whirl: tag %q is not %d characters", tag, tagLength)
	}
	// '#' is excluded too so wrapper markers stay distinguishable from
	// tag characters during decoding.
	if strings.ContainsAny(tag, "`#") {
		return fmt.Errorf("whirl: tag %q contains a delimiter character", tag)
	}
	t := reflect.TypeOf(canonical)
	if prev, ok := r.byTag[tag]; ok && reflect.TypeOf(prev) != t {
		return fmt.Errorf("whirl: tag %q already bound to %T", tag, prev)
	}
	if prev, ok := r.byType[t]; ok && prev != tag {
		return fmt.Errorf("whirl: type %T already bound to tag %q", canonical, prev)
	}
	r.byTag[tag] = canonical
	r.byType[t] = tag
	return nil
}

// TryRegister is Register without an error report.
func (r *Registry) TryRegister(tag string, canonical Source) bool {
	return r.Register(tag, canonical) == nil
}

// ForceRegister binds tag to canonical unconditionally, displacing any
// previous binding of the tag or the type.
func (r *Registry) ForceRegister(tag string, canonical Source) {
	if prev, ok := r.byTag[tag]; ok && reflect.TypeOf(prev) != reflect.TypeOf(canonical) {
		log.Warning("tag %q rebound from %T to %T", tag, prev, canonical)
		delete(r.byType, reflect.TypeOf(prev))
	}
	t := reflect.TypeOf(canonical)
	if prev, ok := r.byType[t]; ok && prev != tag {
		delete(r.byTag, prev)
	}
	r.byTag[tag] = canonical
	r.byType[t] = tag
}

// RegisterWrapper binds a wrapper marker byte to a wrapping
// constructor used during deserialization.
func (r *Registry) RegisterWrapper(marker byte, wrap func(Source) (Source, error)) error {
	if marker == '`' || marker == '#' {
		return fmt.Errorf("whirl: wrapper marker %q collides with the format delimiters", marker)
	}
	if _, ok := r.wrappers[marker]; ok {
		return fmt.Errorf("whirl: wrapper marker %q already registered", marker)
	}
	r.wrappers[marker] = wrap
	return nil
}

// Tag reports the tag bound to src's concrete type.
func (r *Registry) Tag(src Source) (string, bool) {
	tag, ok := r.byType[reflect.TypeOf(src)]
	return tag, ok
}

// Serialize renders src in the text format. Wrappers emit their marker
// followed by the inner generator's form; the wrapped type itself need
// not be tagged, only the innermost generator.
func (r *Registry) Serialize(src Source) (string, error) {
	out, err := r.appendSerialized(nil, src)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (r *Registry) appendSerialized(dst []byte, src Source) ([]byte, error) {
	if w, ok := src.(Wrapper); ok {
		dst = append(dst, '#', w.Marker())
		return r.appendSerialized(dst, w.Unwrap())
	}
	tag, ok := r.Tag(src)
	if !ok {
		return nil, fmt.Errorf("%w: no tag for %T", ErrUnknownTag, src)
	}
	dst = append(dst, '#')
	dst = append(dst, tag...)
	dst = append(dst, '`')
	dst = src.AppendState(dst)
	return append(dst, '`'), nil
}

// Deserialize reconstructs a generator from its serialized form by
// copying the registered canonical instance and handing it the state
// body between the delimiters. Structural problems are reported before
// any tag lookup.
func (r *Registry) Deserialize(data string) (Source, error) {
	if len(data) < tagLength+3 || data[0] != '#' {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, data)
	}
	if data[2] == '#' {
		wrap, ok := r.wrappers[data[1]]
		if !ok {
			return nil, fmt.Errorf("%w: wrapper marker %q", ErrUnknownTag, data[1])
		}
		inner, err := r.Deserialize(data[2:])
		if err != nil {
			return nil, err
		}
		return wrap(inner)
	}
	if data[tagLength+1] != '`' || data[len(data)-1] != '`' {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, data)
	}
	tag := data[1 : tagLength+1]
	canonical, ok := r.byTag[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	out := canonical.Copy()
	if err := out.LoadState(data[tagLength+2 : len(data)-1]); err != nil {
		return nil, err
	}
	return out, nil
}
