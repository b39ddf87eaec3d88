package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/arith/expr"
)

func TestInfixRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"1 + 1", "1 + 1"},
		{"( 1 + 1 )", "1 + 1"},
		{"5 - 6 + 12 - 3", "5 - 6 + 12 - 3"},
		{"1 - ( 2 - 3 )", "1 - ( 2 - 3 )"},
		{"1 + ( 2 + 3 )", "1 + ( 2 + 3 )"},
		{"( 5 + 6 ) * 3", "( 5 + 6 ) * 3"},
		{"5 + ( 6 * 3 )", "5 + 6 * 3"},
		{"2 * ( 3 * 4 )", "2 * ( 3 * 4 )"},
		{"-5 * ( -2 - 1 )", "-5 * ( -2 - 1 )"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := expr.MustParse(tt.input)
			got := Infix(e)
			if got != tt.want {
				t.Errorf("Infix() = %q, want %q", got, tt.want)
			}
			back, err := expr.Parse(got)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", got, err)
			}
			if !expr.Equal(back, e) {
				t.Errorf("round trip changed tree: %s -> %s", e, back)
			}
		})
	}
}

func TestTreeEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(expr.MustParse("( 1 + 2 ) * 3")); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "Operation Mult\n" +
		"  Operation Add\n" +
		"    Value 1\n" +
		"    Value 2\n" +
		"  Value 3\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf).WithResult()
	if err := enc.Encode(expr.MustParse("1 + 0")); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got["kind"] != "Operation" || got["operator"] != "Add" {
		t.Errorf("root = %v, want Add operation", got)
	}
	if got["result"] != float64(1) {
		t.Errorf("result = %v, want 1", got["result"])
	}
	right, ok := got["right"].(map[string]any)
	if !ok {
		t.Fatalf("right = %v, want object", got["right"])
	}
	if right["kind"] != "Value" || right["value"] != float64(0) {
		t.Errorf("right = %v, want Value 0", right)
	}
	if _, ok := right["result"]; ok {
		t.Errorf("result should only appear on the root")
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		if _, ok := New(name, &bytes.Buffer{}); !ok {
			t.Errorf("New(%q) not found", name)
		}
	}
	if _, ok := New("xml", &bytes.Buffer{}); ok {
		t.Errorf("New(%q) should not exist", "xml")
	}
}
