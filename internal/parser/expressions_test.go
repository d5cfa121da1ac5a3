package parser_test

import (
	"testing"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/parser"
	"github.com/cwbudde/go-cc/internal/types"
)

func mainBody(t *testing.T, src string) *ast.Node {
	t.Helper()
	prog := mustParse(t, src)
	main := findGlobal(prog, "main")
	if main == nil {
		t.Fatal("function main not found")
	}
	if main.Body == nil {
		t.Fatal("main.Body is nil")
	}
	return main.Body
}

func TestRelationalOperatorsDesugarSwapped(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKind ast.NodeKind
	}{
		{"less-than stays as-is", "int main(){return 1<2;}", ast.LessThan},
		{"less-or-equal stays as-is", "int main(){return 1<=2;}", ast.LessThanOrEqual},
		{"greater-than becomes less-than", "int main(){return 1>2;}", ast.LessThan},
		{"greater-or-equal becomes less-or-equal", "int main(){return 1>=2;}", ast.LessThanOrEqual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := mainBody(t, tt.src)
			ret := body.Stmts[0]
			if ret.Kind != ast.Return {
				t.Fatalf("first statement Kind = %v, want Return", ret.Kind)
			}
			if ret.Left.Kind != tt.wantKind {
				t.Errorf("comparison Kind = %v, want %v", ret.Left.Kind, tt.wantKind)
			}
			if ret.Left.Type.Kind != types.Int64 {
				t.Errorf("comparison Type.Kind = %v, want Int64", ret.Left.Type.Kind)
			}
		})
	}
}

func TestPointerArithmeticScalesBySize(t *testing.T) {
	body := mainBody(t, "int main(){int a[3]; return *(a+1);}")
	// statements: declare a (with no initializer -> no assignment stmt), return
	ret := body.Stmts[len(body.Stmts)-1]
	if ret.Kind != ast.Return {
		t.Fatalf("last statement Kind = %v, want Return", ret.Kind)
	}
	deref := ret.Left
	if deref.Kind != ast.Dereference {
		t.Fatalf("return expression Kind = %v, want Dereference", deref.Kind)
	}
	add := deref.Left
	if add.Kind != ast.Addition {
		t.Fatalf("dereference operand Kind = %v, want Addition", add.Kind)
	}
	if add.Type.Kind != types.Pointer {
		t.Errorf("pointer addition result Type.Kind = %v, want Pointer", add.Type.Kind)
	}
	scaled := add.Right
	if scaled.Kind != ast.Multiplication || scaled.Right.Kind != ast.Number || scaled.Right.NumVal != 4 {
		t.Errorf("pointer addition offset = %+v, want the index scaled by 4 (sizeof int)", scaled)
	}
}

func TestSubscriptLowersToDereferenceOfAdd(t *testing.T) {
	body := mainBody(t, "int main(){int a[3]; return a[1];}")
	ret := body.Stmts[len(body.Stmts)-1]
	deref := ret.Left
	if deref.Kind != ast.Dereference {
		t.Fatalf("a[1] Kind = %v, want Dereference", deref.Kind)
	}
	if deref.Left.Kind != ast.Addition {
		t.Fatalf("a[1] operand Kind = %v, want Addition", deref.Left.Kind)
	}
}

func TestSizeofOfTypeAndExpression(t *testing.T) {
	body := mainBody(t, "int main(){int x; return sizeof(int) + sizeof x;}")
	ret := body.Stmts[len(body.Stmts)-1]
	add := ret.Left
	if add.Kind != ast.Addition {
		t.Fatalf("return expression Kind = %v, want Addition", add.Kind)
	}
	if add.Left.Kind != ast.Number || add.Left.NumVal != 4 {
		t.Errorf("sizeof(int) = %+v, want Number(4)", add.Left)
	}
	if add.Right.Kind != ast.Number || add.Right.NumVal != 4 {
		t.Errorf("sizeof x = %+v, want Number(4)", add.Right)
	}
}

func TestAssignmentRejectsNonLvalue(t *testing.T) {
	_, _, err := parser.Parse("int main(){1=2; return 0;}", "test.c")
	if err == nil {
		t.Fatal("expected an error assigning to a non-lvalue, got nil")
	}
}

func TestFunctionCallArgumentsParsedLeftToRight(t *testing.T) {
	prog := mustParse(t, "int add(int x, int y){return x+y;} int main(){return add(1,2);}")
	main := findGlobal(prog, "main")
	ret := main.Body.Stmts[0]
	call := ret.Left
	if call.Kind != ast.FunctionCall {
		t.Fatalf("return expression Kind = %v, want FunctionCall", call.Kind)
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(call.Args) = %d, want 2", len(call.Args))
	}
	if call.Args[0].NumVal != 1 || call.Args[1].NumVal != 2 {
		t.Errorf("call.Args = %+v, want [1 2] in order", call.Args)
	}
}
