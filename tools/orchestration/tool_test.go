package orchestration

import (
	"context"
	"strings"
	"testing"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
	"github.com/bububa/linkedin-agents/tools/calculator"
	"github.com/bububa/linkedin-agents/tools/linkedin"
)

type request struct {
	schema.Base
	Kind    string
	Payload string
}

func (r request) String() string {
	return r.Payload
}

func newDispatcher() *Tool[request] {
	calc := calculator.New()
	analyzer := linkedin.NewLengthAnalyzer()
	selector := func(_ context.Context, req *request) (tools.OrchestrationTool, any, error) {
		switch req.Kind {
		case "calc":
			return calc, &calculator.Input{Expression: req.Payload}, nil
		default:
			return analyzer, &linkedin.LengthInput{Content: req.Payload}, nil
		}
	}
	return New(selector, tools.WithTitle("Dispatcher"))
}

func TestToolDispatch(t *testing.T) {
	dispatcher := newDispatcher()
	ctx := context.Background()

	res, err := dispatcher.RunOrchestration(ctx, &request{Kind: "calc", Payload: "2+3"})
	if err != nil {
		t.Fatal(err)
	}
	if out, ok := res.(*calculator.Output); !ok {
		t.Fatalf("unexpected output type %T", res)
	} else if out.String() != "Result: 5" {
		t.Errorf("unexpected result %q", out.String())
	}

	res, err = dispatcher.RunOrchestration(ctx, &request{Kind: "length", Payload: "short post"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(*linkedin.LengthOutput); !ok {
		t.Fatalf("unexpected output type %T", res)
	}
}

func TestToolInvalidInput(t *testing.T) {
	dispatcher := newDispatcher()
	if _, err := dispatcher.RunOrchestration(context.Background(), "not a request"); err != tools.ErrInvalidToolInput {
		t.Errorf("expected ErrInvalidToolInput, got %v", err)
	}
}

func TestStringify(t *testing.T) {
	wrapped := Stringify(calculator.New())
	res, err := wrapped.RunOrchestration(context.Background(), &calculator.Input{Expression: "10/4"})
	if err != nil {
		t.Fatal(err)
	}
	out, ok := res.(*schema.Output)
	if !ok {
		t.Fatalf("unexpected output type %T", res)
	}
	if !strings.HasPrefix(out.ChatMessage, "Result: ") {
		t.Errorf("unexpected message %q", out.ChatMessage)
	}
}
