package naming

import (
	"fmt"
	"strings"
)

type fragment struct {
	prop Property
	text string
	ctx  string
}

// Builder assembles a name by appending typed property fragments in
// sequence. The separator between two adjacent fragments is resolved
// from the profile's separator rules; the profile's final transform is
// applied once when the name is read out. A Builder is single-use and
// not safe for concurrent use.
type Builder struct {
	profile    *Profile
	converters map[Property]func(any) string
	fragments  []fragment
}

// NewBuilder creates a builder over the given profile.
func NewBuilder(p *Profile) *Builder {
	return &Builder{profile: p}
}

// Convert registers a string-conversion function for a property.
// Properties without one fall back to fmt.Sprintf("%v", ...).
func (b *Builder) Convert(prop Property, fn func(any) string) *Builder {
	if b.converters == nil {
		b.converters = make(map[Property]func(any) string)
	}
	b.converters[prop] = fn
	return b
}

// Append adds a fragment. Appending the empty string is a no-op: no
// fragment and no separator are emitted.
func (b *Builder) Append(prop Property, text string) *Builder {
	return b.AppendCtx(prop, "", text)
}

// AppendCtx adds a fragment under a separation context. The context
// participates in separator resolution between the previous fragment
// and this one.
func (b *Builder) AppendCtx(prop Property, ctx, text string) *Builder {
	if text == "" {
		return b
	}
	b.fragments = append(b.fragments, fragment{prop: prop, text: text, ctx: ctx})
	return b
}

// AppendValue converts a value through the property's conversion
// function and appends the result. Nil values are a no-op.
func (b *Builder) AppendValue(prop Property, v any) *Builder {
	return b.AppendValueCtx(prop, "", v)
}

// AppendValueCtx is AppendValue under a separation context.
func (b *Builder) AppendValueCtx(prop Property, ctx string, v any) *Builder {
	if v == nil {
		return b
	}
	return b.AppendCtx(prop, ctx, b.convert(prop, v))
}

// AppendAll appends every value in order under the same property.
// An empty collection is a no-op.
func (b *Builder) AppendAll(prop Property, values ...any) *Builder {
	for _, v := range values {
		b.AppendValue(prop, v)
	}
	return b
}

func (b *Builder) convert(prop Property, v any) string {
	if fn, ok := b.converters[prop]; ok {
		return fn(v)
	}
	return fmt.Sprintf("%v", v)
}

// String assembles the final name, resolving separators between adjacent
// fragments and applying the profile's final transform.
func (b *Builder) String() string {
	var sb strings.Builder
	for i, f := range b.fragments {
		if i > 0 {
			prev := b.fragments[i-1]
			sb.WriteString(resolveSeparator(b.profile.Rules, prev.prop, f.prop, f.ctx, b.profile.DefaultSeparator))
		}
		sb.WriteString(f.text)
	}
	name := sb.String()
	if b.profile.FinalTransform != nil {
		name = b.profile.FinalTransform(name)
	}
	return name
}
