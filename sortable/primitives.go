package sortable

// Int is a sortable wrapper for int.
type Int int

// Byte is a sortable wrapper for byte.
type Byte byte

// String is a sortable wrapper for string, ordered bytewise.
type String string

// Compile-time checks.
var (
	_ Sortable[Int]    = (*Int)(nil)
	_ Sortable[Byte]   = (*Byte)(nil)
	_ Sortable[String] = (*String)(nil)
)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return b == other
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return b < other
}

// Equals returns true if both strings hold the same bytes.
func (s String) Equals(other String) bool {
	return s == other
}

// LessThan returns true if this String sorts before the other String bytewise.
func (s String) LessThan(other String) bool {
	return s < other
}
