package scope

import (
	"testing"

	"github.com/cwbudde/go-cc/internal/types"
)

func TestInnerShadowsOuter(t *testing.T) {
	s := New()
	s.Enter()
	_ = s.DeclareEntry("x", "outer")
	s.Enter()
	_ = s.DeclareEntry("x", "inner")

	if got := s.FindEntry("x"); got != "inner" {
		t.Fatalf("got %v, want inner", got)
	}

	s.Leave()
	if got := s.FindEntry("x"); got != "outer" {
		t.Fatalf("after leave: got %v, want outer", got)
	}
}

func TestDeclareDuplicateInSameScopeErrors(t *testing.T) {
	s := New()
	s.Enter()
	if err := s.DeclareEntry("x", 1); err != nil {
		t.Fatalf("first declaration: unexpected error: %v", err)
	}
	if err := s.DeclareEntry("x", 2); err == nil {
		t.Fatal("expected an error redeclaring x in the same scope")
	}
	if got := s.FindEntry("x"); got != 1 {
		t.Fatalf("FindEntry(x) = %v, want 1 (the rejected redeclaration must not overwrite it)", got)
	}
}

func TestFindEntryMissingReturnsNil(t *testing.T) {
	s := New()
	s.Enter()
	if got := s.FindEntry("missing"); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestDeclareWithNoScopeErrors(t *testing.T) {
	s := New()
	if err := s.DeclareEntry("x", 1); err == nil {
		t.Fatalf("expected error declaring with no open scope")
	}
}

func TestTagsAreASeparateNamespace(t *testing.T) {
	s := New()
	s.Enter()
	st := types.NewStructType("Point", nil)
	_ = s.DeclareTag("Point", st)
	_ = s.DeclareEntry("Point", "not a tag")

	if got := s.FindTag("Point"); got != st {
		t.Fatalf("expected tag lookup to find the struct type")
	}
	if got := s.FindEntry("Point"); got != "not a tag" {
		t.Fatalf("expected entry lookup to find the entry, not the tag")
	}
}

func TestLeaveOnEmptyStackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic leaving an empty stack")
		}
	}()
	New().Leave()
}
