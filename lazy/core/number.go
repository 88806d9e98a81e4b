package core

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex types.
type Complex interface {
	~complex64 | ~complex128
}

// Number is the set of types supporting + and *.
type Number interface {
	Integer | Float | Complex
}

// Addable is the set of types supporting +.
type Addable interface {
	Number | ~string
}
