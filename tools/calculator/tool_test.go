package calculator

import (
	"context"
	"fmt"
	"testing"
)

func Test(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("15 * 23 + 45", nil))
	if err != nil {
		t.Fatal(err)
	}
	value, ok := ret.Result.(float64)
	if !ok {
		t.Fatalf("expecting float64, but got %T", ret.Result)
	}
	if int(value) != 390 {
		t.Errorf("expecting 390, but got %.2f", value)
	}
}

func TestRejectUnsafeExpression(t *testing.T) {
	ctx := context.Background()
	tool := New()
	if _, err := tool.Run(ctx, NewInput(`"abc" == "abc"`, nil)); err == nil {
		t.Error("expecting error for non arithmetic expression")
	}
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret, _ := tool.Run(ctx, NewInput("2+2", nil))
	fmt.Println(ret.Result)
	// Output:
	// 4
}
