package bind

import (
	"testing"

	"github.com/el-macro/elgo/pkg/el"
)

func TestFrom_Extract_Success(t *testing.T) {
	x, ok := From(el.Some(42).IntoOutcome()).Extract()
	if !ok || x != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", x, ok)
	}
}

func TestFrom_Extract_FailureWithHandler(t *testing.T) {
	calls := 0
	_, ok := From(el.None[int]().IntoOutcome()).
		OnFailure(func(el.Unit) { calls++ }).
		Extract()
	if ok {
		t.Fatalf("expected failure for absent option")
	}
	if calls != 1 {
		t.Fatalf("expected handler to run exactly once, ran %d times", calls)
	}
}

func TestFrom_Or_HandlerThenEscape(t *testing.T) {
	var order []string
	x := From(el.None[int]().IntoOutcome()).
		OnFailure(func(el.Unit) { order = append(order, "handler") }).
		Or(func() int { order = append(order, "escape"); return 9 })

	if x != 9 {
		t.Fatalf("expected escape result 9, got %d", x)
	}
	if len(order) != 2 || order[0] != "handler" || order[1] != "escape" {
		t.Fatalf("expected handler then escape, got %v", order)
	}
}

func TestFrom_Or_SuccessSkipsBoth(t *testing.T) {
	calls := 0
	x := From(el.Some(1).IntoOutcome()).
		OnFailure(func(el.Unit) { calls++ }).
		Or(func() int { calls++; return 0 })

	if x != 1 {
		t.Fatalf("expected 1, got %d", x)
	}
	if calls != 0 {
		t.Fatalf("neither handler nor escape may run on success, ran %d times", calls)
	}
}
