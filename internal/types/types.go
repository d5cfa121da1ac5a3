// Package types models the compiler's type system: fixed-size scalars,
// pointers, arrays, functions, and struct/union layouts.
package types

import "github.com/cwbudde/go-cc/internal/lexer"

// Kind discriminates the variants of Type.
type Kind int

const (
	Int Kind = iota
	Short
	Char
	Int64
	Void
	Pointer
	Array
	Function
	Struct
	Union
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Short:
		return "short"
	case Char:
		return "char"
	case Int64:
		return "i64"
	case Void:
		return "void"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	case Function:
		return "function"
	case Struct:
		return "struct"
	case Union:
		return "union"
	default:
		return "?"
	}
}

// Member is a single field of a Struct or Union type, laid out at Offset
// bytes from the start of the aggregate.
type Member struct {
	Next   *Member
	Name   string
	Type   *Type
	Offset int
}

// Param is one entry in a Function type's linked parameter list.
type Param struct {
	Next *Param
	Type *Type
}

// Type is the compiler's single type representation. Only the fields
// relevant to Kind are meaningful; see the constructors below.
type Type struct {
	Kind    Kind
	Size    int
	Align   int
	Pointee *Type  // Pointer, Array element type
	Len     int    // Array length
	Return  *Type  // Function return type
	Params  *Param // Function parameter list, in order
	Members *Member // Struct/Union member list, in declaration order
	Tag     string  // struct/union tag name, if any
	Token   *lexer.Token // the declarator token naming the entity
}

// Scalar constructors. Sizes and alignments match the SysV AMD64 ABI.
func NewInt() *Type    { return &Type{Kind: Int, Size: 4, Align: 4} }
func NewShort() *Type  { return &Type{Kind: Short, Size: 2, Align: 2} }
func NewChar() *Type   { return &Type{Kind: Char, Size: 1, Align: 1} }
func NewInt64() *Type  { return &Type{Kind: Int64, Size: 8, Align: 8} }
func NewVoid() *Type   { return &Type{Kind: Void, Size: 1, Align: 1} }

// NewPointer builds a pointer to pointee. Pointers are always 8 bytes.
func NewPointer(pointee *Type) *Type {
	return &Type{Kind: Pointer, Size: 8, Align: 8, Pointee: pointee}
}

// NewArray builds an array of length elements of elem type. Size is
// element size times length; alignment matches the element's.
func NewArray(elem *Type, length int) *Type {
	return &Type{Kind: Array, Size: elem.Size * length, Align: elem.Align, Pointee: elem, Len: length}
}

// NewFunction builds a function type with the given return type and
// parameter list (may be nil for a parameterless function).
func NewFunction(ret *Type, params *Param) *Type {
	return &Type{Kind: Function, Size: 0, Align: 0, Return: ret, Params: params}
}

// IsInteger reports whether t is one of the integer scalar kinds.
func (t *Type) IsInteger() bool {
	switch t.Kind {
	case Int, Short, Char, Int64:
		return true
	default:
		return false
	}
}

// IsPointer reports whether t is a Pointer (arrays decay to pointer
// semantics explicitly at use sites; they are not IsPointer themselves).
func (t *Type) IsPointer() bool {
	return t.Kind == Pointer
}

// Base returns the type used for pointer-arithmetic scaling: for a
// Pointer it is Pointee, for an Array it is the element type (the
// array-to-pointer decay that happens implicitly at use sites).
func (t *Type) Base() *Type {
	if t.Kind == Pointer || t.Kind == Array {
		return t.Pointee
	}
	return nil
}

// NewStructType lays out members at strictly non-decreasing offsets,
// padding the total size up to the largest member alignment.
func NewStructType(tag string, members *Member) *Type {
	offset := 0
	maxAlign := 1
	for m := members; m != nil; m = m.Next {
		if m.Type.Align > maxAlign {
			maxAlign = m.Type.Align
		}
		offset = alignUp(offset, m.Type.Align)
		m.Offset = offset
		offset += m.Type.Size
	}
	size := alignUp(offset, maxAlign)
	return &Type{Kind: Struct, Size: size, Align: maxAlign, Members: members, Tag: tag}
}

// NewUnionType places every member at offset 0; the union's size is the
// largest member's size.
func NewUnionType(tag string, members *Member) *Type {
	size := 0
	maxAlign := 1
	for m := members; m != nil; m = m.Next {
		m.Offset = 0
		if m.Type.Size > size {
			size = m.Type.Size
		}
		if m.Type.Align > maxAlign {
			maxAlign = m.Type.Align
		}
	}
	return &Type{Kind: Union, Size: size, Align: maxAlign, Members: members, Tag: tag}
}

// FindMember looks up a member by name, or returns nil.
func (t *Type) FindMember(name string) *Member {
	for m := t.Members; m != nil; m = m.Next {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + (align - rem)
}
