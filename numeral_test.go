package romanum

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

func TestParseAndFromInt(t *testing.T) {
	n, err := Parse("MCMXCIV")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if v, err := n.Int(); err != nil || v != 1994 {
		t.Fatalf("Int() = %d, %v", v, err)
	}

	if _, err := Parse("IIII"); err == nil {
		t.Fatal("Parse(\"IIII\"): expected error")
	}

	m, err := FromInt(49)
	if err != nil {
		t.Fatalf("FromInt error: %v", err)
	}
	if m != "XLIX" {
		t.Fatalf("FromInt(49) = %q", m)
	}
	if _, err := FromInt(5000); err == nil {
		t.Fatal("FromInt(5000): expected error")
	}
}

func TestNumeralJSON(t *testing.T) {
	type doc struct {
		Year Numeral `json:"year"`
	}

	b, err := json.Marshal(doc{Year: "MCMXCIV"})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `{"year":"MCMXCIV"}` {
		t.Fatalf("marshal: got %s", b)
	}

	var d doc
	if err := json.Unmarshal(b, &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if d.Year != "MCMXCIV" {
		t.Fatalf("unmarshal: got %q", d.Year)
	}

	// invalid numerals are refused in both directions
	if _, err := json.Marshal(doc{Year: "VX"}); err == nil {
		t.Fatal("expected marshal error for invalid numeral")
	}
	if err := json.Unmarshal([]byte(`{"year":"IIII"}`), &d); err == nil {
		t.Fatal("expected unmarshal error for invalid numeral")
	}
	var se *SyntaxError
	err = json.Unmarshal([]byte(`{"year":"mmi"}`), &d)
	if !errors.As(err, &se) {
		t.Fatalf("unmarshal lowercase: got %v, want *SyntaxError", err)
	}
}

func TestNumeralCBOR(t *testing.T) {
	b, err := cbor.Marshal(Numeral("MMDXXV"))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	// the wire form is a plain CBOR text string
	var raw string
	if err := cbor.Unmarshal(b, &raw); err != nil || raw != "MMDXXV" {
		t.Fatalf("wire form: %q, %v", raw, err)
	}

	var n Numeral
	if err := cbor.Unmarshal(b, &n); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if n != "MMDXXV" {
		t.Fatalf("round trip: got %q", n)
	}

	if _, err := cbor.Marshal(Numeral("IIII")); err == nil {
		t.Fatal("expected marshal error for invalid numeral")
	}

	bad, err := cbor.Marshal("VX")
	if err != nil {
		t.Fatalf("marshal bad input: %v", err)
	}
	if err := cbor.Unmarshal(bad, &n); err == nil {
		t.Fatal("expected unmarshal error for invalid numeral")
	}
}

func TestNumeralMsgpack(t *testing.T) {
	b, err := msgpack.Marshal(Numeral("MMMMCMXCIX"))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var n Numeral
	if err := msgpack.Unmarshal(b, &n); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if n != "MMMMCMXCIX" {
		t.Fatalf("round trip: got %q", n)
	}

	if _, err := msgpack.Marshal(Numeral("VIV")); err == nil {
		t.Fatal("expected marshal error for invalid numeral")
	}

	bad, err := msgpack.Marshal("IIII")
	if err != nil {
		t.Fatalf("marshal bad input: %v", err)
	}
	if err := msgpack.Unmarshal(bad, &n); err == nil {
		t.Fatal("expected unmarshal error for invalid numeral")
	}
}
