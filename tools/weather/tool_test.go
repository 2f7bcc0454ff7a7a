package weather

import (
	"context"
	"fmt"
	"testing"
)

func Test(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("Tokyo"))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Conditions != "Rainy, 18°C" {
		t.Errorf("expecting tokyo conditions, but got %q", ret.Conditions)
	}
	ret, err = tool.Run(ctx, NewInput("Atlantis"))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Conditions != "" {
		t.Errorf("expecting unknown city to degrade, but got %q", ret.Conditions)
	}
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret, _ := tool.Run(ctx, NewInput("Paris"))
	fmt.Println(ret)
	// Output:
	// Weather in Paris: Partly cloudy, 19°C
}
