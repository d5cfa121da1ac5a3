package types

import "testing"

func TestScalarSizesAndAlignments(t *testing.T) {
	cases := []struct {
		typ        *Type
		size, align int
	}{
		{NewChar(), 1, 1},
		{NewShort(), 2, 2},
		{NewInt(), 4, 4},
		{NewInt64(), 8, 8},
		{NewVoid(), 1, 1},
	}
	for _, c := range cases {
		if c.typ.Size != c.size || c.typ.Align != c.align {
			t.Fatalf("%s: got size=%d align=%d, want size=%d align=%d",
				c.typ.Kind, c.typ.Size, c.typ.Align, c.size, c.align)
		}
	}
}

func TestPointerIsAlwaysEightBytes(t *testing.T) {
	p := NewPointer(NewChar())
	if p.Size != 8 || p.Align != 8 {
		t.Fatalf("got size=%d align=%d, want 8/8", p.Size, p.Align)
	}
	if p.Pointee.Kind != Char {
		t.Fatalf("expected pointee Char, got %s", p.Pointee.Kind)
	}
}

func TestArraySizeIsElementSizeTimesLength(t *testing.T) {
	a := NewArray(NewInt(), 3)
	if a.Size != 12 {
		t.Fatalf("got size %d, want 12", a.Size)
	}
	if a.Len != 3 {
		t.Fatalf("got len %d, want 3", a.Len)
	}
}

func TestStructLayoutNonDecreasingOffsetsAndPadding(t *testing.T) {
	members := &Member{Name: "a", Type: NewInt()}
	members.Next = &Member{Name: "b", Type: NewChar()}

	s := NewStructType("S", members)

	if members.Offset != 0 {
		t.Fatalf("first member offset: got %d, want 0", members.Offset)
	}
	if members.Next.Offset != 4 {
		t.Fatalf("second member offset: got %d, want 4", members.Next.Offset)
	}
	// size padded to max alignment (4): 4 (int) + 1 (char) = 5 -> 8
	if s.Size%s.Align != 0 {
		t.Fatalf("struct size %d not a multiple of alignment %d", s.Size, s.Align)
	}
	if s.Size != 8 {
		t.Fatalf("got size %d, want 8", s.Size)
	}
}

func TestUnionAllMembersAtOffsetZero(t *testing.T) {
	members := &Member{Name: "a", Type: NewInt()}
	members.Next = &Member{Name: "b", Type: NewChar()}

	u := NewUnionType("U", members)

	for m := u.Members; m != nil; m = m.Next {
		if m.Offset != 0 {
			t.Fatalf("member %s: got offset %d, want 0", m.Name, m.Offset)
		}
	}
	if u.Size != 4 {
		t.Fatalf("got union size %d, want 4 (max member size)", u.Size)
	}
}

func TestFindMember(t *testing.T) {
	members := &Member{Name: "a", Type: NewInt()}
	members.Next = &Member{Name: "b", Type: NewChar()}
	s := NewStructType("S", members)

	if m := s.FindMember("b"); m == nil || m.Name != "b" {
		t.Fatalf("expected to find member b")
	}
	if m := s.FindMember("missing"); m != nil {
		t.Fatalf("expected nil for missing member, got %+v", m)
	}
}
