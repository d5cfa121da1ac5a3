package parser_test

import (
	"testing"

	"github.com/cwbudde/go-cc/internal/ast"
)

func TestIfWithoutElse(t *testing.T) {
	body := mainBody(t, "int main(){if(1){return 1;} return 0;}")
	ifNode := body.Stmts[0]
	if ifNode.Kind != ast.If {
		t.Fatalf("first statement Kind = %v, want If", ifNode.Kind)
	}
	if ifNode.Then == nil {
		t.Error("ifNode.Then is nil")
	}
	if ifNode.Else != nil {
		t.Error("ifNode.Else is non-nil for an if with no else branch")
	}
}

func TestIfWithElse(t *testing.T) {
	body := mainBody(t, "int main(){if(1){return 1;} else {return 0;}}")
	ifNode := body.Stmts[0]
	if ifNode.Then == nil || ifNode.Else == nil {
		t.Fatalf("ifNode.Then=%v Else=%v, want both non-nil", ifNode.Then, ifNode.Else)
	}
}

func TestForLoopFields(t *testing.T) {
	body := mainBody(t, "int main(){int i; int s=0; for(i=1;i<=5;i=i+1){s=s+i;} return s;}")
	var forNode *ast.Node
	for _, stmt := range body.Stmts {
		if stmt.Kind == ast.For {
			forNode = stmt
		}
	}
	if forNode == nil {
		t.Fatal("no For statement found")
	}
	if forNode.Init == nil {
		t.Error("forNode.Init is nil, want the i=1 initializer")
	}
	if forNode.Cond == nil {
		t.Error("forNode.Cond is nil, want the i<=5 test")
	}
	if forNode.Inc == nil {
		t.Error("forNode.Inc is nil, want the i=i+1 increment")
	}
	if forNode.Body == nil {
		t.Error("forNode.Body is nil")
	}
}

func TestWhileDesugarsToForWithNilInitAndInc(t *testing.T) {
	body := mainBody(t, "int main(){int i=0; while(i<5){i=i+1;} return i;}")
	var whileNode *ast.Node
	for _, stmt := range body.Stmts {
		if stmt.Kind == ast.For {
			whileNode = stmt
		}
	}
	if whileNode == nil {
		t.Fatal("while did not desugar to a For node")
	}
	if whileNode.Init != nil {
		t.Error("whileNode.Init is non-nil, want nil for a desugared while")
	}
	if whileNode.Inc != nil {
		t.Error("whileNode.Inc is non-nil, want nil for a desugared while")
	}
	if whileNode.Cond == nil || whileNode.Body == nil {
		t.Error("whileNode.Cond or Body is nil")
	}
}

func TestForLoopEmptyClausesAllowed(t *testing.T) {
	body := mainBody(t, "int main(){int i=0; for(;;){ return i; } return 1;}")
	var forNode *ast.Node
	for _, stmt := range body.Stmts {
		if stmt.Kind == ast.For {
			forNode = stmt
		}
	}
	if forNode == nil {
		t.Fatal("no For statement found")
	}
	if forNode.Init != nil || forNode.Cond != nil || forNode.Inc != nil {
		t.Errorf("for(;;) node = %+v, want Init=Cond=Inc=nil", forNode)
	}
}

func TestNestedBlockIntroducesFreshScope(t *testing.T) {
	body := mainBody(t, "int main(){int x=1; { int x=2; } return x;}")
	ret := body.Stmts[len(body.Stmts)-1]
	if ret.Kind != ast.Return {
		t.Fatalf("last statement Kind = %v, want Return", ret.Kind)
	}
	// the outer x must still resolve to 1, i.e. parsing succeeded without
	// a scope redeclaration error despite the shadowing inner x.
	if ret.Left.Kind != ast.Variable {
		t.Fatalf("return expression Kind = %v, want Variable", ret.Left.Kind)
	}
}
