package charclass

// RepeatRange is a pair (Lower, Upper) of non-negative bounds on a repeat
// count. Upper == 0 means "no upper bound"; otherwise Upper is exclusive, so
// `{m,n}` is stored as (m, n+1), `{m}` as (m, m+1), `*` as (0, 0), `+` as
// (1, 0), and `?` as (0, 2).
type RepeatRange struct {
	Lower uint32
	Upper uint32
}

// Unbounded is true when the range has no upper bound.
func (r RepeatRange) Unbounded() bool {
	return r.Upper == 0
}

// InLowerRange reports whether v satisfies the lower bound.
func (r RepeatRange) InLowerRange(v uint32) bool {
	return v >= r.Lower
}

// InUpperRange reports whether v satisfies the upper bound.
func (r RepeatRange) InUpperRange(v uint32) bool {
	return r.Unbounded() || v < r.Upper
}

// InRange reports whether v satisfies both bounds.
func (r RepeatRange) InRange(v uint32) bool {
	return r.InLowerRange(v) && r.InUpperRange(v)
}

// Star is the range for `*`: zero or more.
func Star() RepeatRange { return RepeatRange{Lower: 0, Upper: 0} }

// Plus is the range for `+`: one or more.
func Plus() RepeatRange { return RepeatRange{Lower: 1, Upper: 0} }

// Optional is the range for `?`: zero or one.
func Optional() RepeatRange { return RepeatRange{Lower: 0, Upper: 2} }

// Exactly is the range for `{m}`.
func Exactly(m uint32) RepeatRange { return RepeatRange{Lower: m, Upper: m + 1} }

// AtLeast is the range for `{m,}`.
func AtLeast(m uint32) RepeatRange { return RepeatRange{Lower: m, Upper: 0} }

// Between is the range for `{m,n}`.
func Between(m, n uint32) RepeatRange { return RepeatRange{Lower: m, Upper: n + 1} }

// IsExactlyOne reports whether the range is equivalent to `{1}` (a no-op
// repeat), used by the graph algebra's repeat-rewrite fast path.
func (r RepeatRange) IsExactlyOne() bool {
	return r.Lower == 1 && r.Upper == 2
}

// IsExactlyZero reports whether the range is equivalent to `{0}`.
func (r RepeatRange) IsExactlyZero() bool {
	return r.Lower == 0 && r.Upper == 1
}

// IsOptional reports whether the range is equivalent to `?`.
func (r RepeatRange) IsOptional() bool {
	return r.Lower == 0 && r.Upper == 2
}
