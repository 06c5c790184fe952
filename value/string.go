package value

import (
	"strconv"
	"strings"
)

// StringData is a refcounted, mutable byte buffer. Static strings (string
// literals baked into a unit) share the shape but are never freed and never
// mutated in place — SetElemString always copies when static is true,
// exactly as the original refuses to modifyChar a StaticString.
type StringData struct {
	data   []byte
	static bool
	refs   int32
}

// NewString allocates a fresh, single-owner StringData.
func NewString(s string) *StringData {
	return &StringData{data: []byte(s), refs: 1}
}

// NewStaticString allocates an immortal StringData, as if interned from the
// unit's literal table. Refcounting on a static string is a no-op.
func NewStaticString(s string) *StringData {
	return &StringData{data: []byte(s), static: true, refs: 1}
}

func (s *StringData) IncRef() {
	if s == nil || s.static {
		return
	}
	s.refs++
}

func (s *StringData) DecRef() {
	if s == nil || s.static {
		return
	}
	s.refs--
}

// HasMultipleRefs mirrors hasMultipleRefs(): true whenever an in-place
// mutation would be observable through another live reference.
func (s *StringData) HasMultipleRefs() bool {
	if s == nil {
		return false
	}
	return s.static || s.refs > 1
}

func (s *StringData) Data() string {
	if s == nil {
		return ""
	}
	return string(s.data)
}

func (s *StringData) Size() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// GetChar returns the byte at offset i as a single-character string, or ""
// if i is out of [0, Size()) — callers distinguish "" (out of bounds) from
// legitimate NUL bytes by checking the bool.
func (s *StringData) GetChar(i int64) (string, bool) {
	if i < 0 || i >= int64(s.Size()) {
		return "", false
	}
	return string(s.data[i]), true
}

// Copy returns a fresh, single-owner, non-static copy of s's bytes.
func (s *StringData) Copy() *StringData {
	b := make([]byte, len(s.data))
	copy(b, s.data)
	return &StringData{data: b, refs: 1}
}

// ModifyCharInPlace implements SetElemString's single-owner fast path:
// mutate s's buffer directly, growing and space-padding if offset is past
// the current end. The caller (member.SetElemString) is responsible for
// having already verified !HasMultipleRefs().
func (s *StringData) ModifyCharInPlace(offset int64, c byte) {
	if offset >= int64(len(s.data)) {
		grown := make([]byte, offset+1)
		copy(grown, s.data)
		for i := len(s.data); i < len(grown)-1; i++ {
			grown[i] = ' '
		}
		s.data = grown
	}
	s.data[offset] = c
}

// WithCharSet returns a new StringData equal to s but with the byte at
// offset replaced by c, growing and space-padding as ModifyCharInPlace
// does. Used on the copy-on-write path when s.HasMultipleRefs().
func (s *StringData) WithCharSet(offset int64, c byte) *StringData {
	n := s.Copy()
	n.ModifyCharInPlace(offset, c)
	return n
}

// IsStrictlyIntegerKey applies the language's strict-integer-string rule:
// "10" canonicalizes to the int key 10, but "010", " 10", "10 ", "-0", and
// "10a" do not and stay string keys. Mirrors the original's
// isStrictlyInteger helper used throughout SetElemArray/ElemArray.
func IsStrictlyIntegerKey(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	i := 0
	neg := false
	if s[0] == '-' {
		neg = true
		i++
	}
	if i >= len(s) {
		return 0, false
	}
	if s[i] == '0' {
		// "0" itself is a valid int key; "0X..." and "-0" are not.
		if len(s) == i+1 && !neg {
			return 0, true
		}
		return 0, false
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// StringOffsetFromKey implements ElemStringPre's fallback for a string key
// that is not a strict integer, used to index a string (member's
// stringOffset casts int, double and bool keys itself): parse a base-10
// integer from the key after stripping leading whitespace, emitting a
// "String offset cast occurred" notice whenever the cast drops trailing
// garbage or the key wasn't already a clean integer or string.
func StringOffsetFromKey(keyStr string, alreadyNumeric bool) (int64, bool, string) {
	trimmed := strings.TrimLeft(keyStr, " \t\n\r\v\f")
	end := 0
	for end < len(trimmed) && (trimmed[end] == '-' || (trimmed[end] >= '0' && trimmed[end] <= '9')) {
		end++
	}
	digits := trimmed[:end]
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false, "String offset cast occurred"
	}
	clean := digits == keyStr && !alreadyNumeric
	if !clean {
		return n, true, "String offset cast occurred"
	}
	return n, true, ""
}
