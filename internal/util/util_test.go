package util_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/derickschaefer/chartspec/internal/util"
)

// ─── Dates / Values ───────────────────────────────────────────────────────────

func TestParseDate(t *testing.T) {
	d, err := util.ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", d)
	}
	if util.FormatDate(d) != "2024-03-01" {
		t.Errorf("FormatDate: got %q", util.FormatDate(d))
	}
	if _, err := util.ParseDate("03/01/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		missing bool
		wantErr bool
	}{
		{"3.5", 3.5, false, false},
		{" 42 ", 42, false, false},
		{".", 0, true, false},
		{"-", 0, true, false},
		{"", 0, true, false},
		{"abc", 0, true, true},
	}
	for _, tt := range tests {
		v, err := util.ParseValue(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if tt.missing {
			if !math.IsNaN(v) {
				t.Errorf("%q: expected NaN, got %g", tt.in, v)
			}
			continue
		}
		if v != tt.want {
			t.Errorf("%q: expected %g, got %g", tt.in, tt.want, v)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := util.FormatValue(math.NaN()); got != "." {
		t.Errorf("NaN: expected '.', got %q", got)
	}
	if got := util.FormatValue(2.50); got != "2.5" {
		t.Errorf("expected 2.5, got %q", got)
	}
}

// ─── MultiError ───────────────────────────────────────────────────────────────

func TestMultiError(t *testing.T) {
	var m util.MultiError
	if m.Err() != nil {
		t.Error("empty MultiError should yield nil")
	}
	sentinel := errors.New("b failed")
	m.Add(errors.New("a failed"))
	m.Add(nil)
	m.Add(sentinel)

	err := m.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "a failed; b failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find a collected error")
	}
}

// ─── YAML ─────────────────────────────────────────────────────────────────────

func TestYAMLToJSONKeepsOrderAndTypes(t *testing.T) {
	in := `
xAxis:
  type: category
  data: [Mon, "Tue", 2024-01-01]
series:
  - type: line
    smooth: true
    data: [1, 2.5, null, 0x10]
title:
  text: "123"
`
	got, err := util.YAMLToJSON([]byte(in))
	if err != nil {
		t.Fatalf("YAMLToJSON: %v", err)
	}
	want := `{"xAxis":{"type":"category","data":["Mon","Tue","2024-01-01"]},` +
		`"series":[{"type":"line","smooth":true,"data":[1,2.5,null,16]}],` +
		`"title":{"text":"123"}}`
	if string(got) != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestYAMLToJSONKeepsFloatsFloat(t *testing.T) {
	got, err := util.YAMLToJSON([]byte("data: [1, 2.0, 1e3, 0.5, !!float 7]\n"))
	if err != nil {
		t.Fatalf("YAMLToJSON: %v", err)
	}
	want := `{"data":[1,2.0,1000.0,0.5,7.0]}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestYAMLToJSONAcceptsJSON(t *testing.T) {
	in := `{"b":1,"a":[true,"x"]}`
	got, err := util.YAMLToJSON([]byte(in))
	if err != nil {
		t.Fatalf("YAMLToJSON: %v", err)
	}
	if string(got) != in {
		t.Errorf("expected %s, got %s", in, got)
	}
}

func TestYAMLToJSONErrors(t *testing.T) {
	if _, err := util.YAMLToJSON([]byte("   \n")); !errors.Is(err, util.ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := util.YAMLToJSON([]byte("a: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := util.YAMLToJSON([]byte("v: .nan")); err == nil {
		t.Error("expected error for NaN")
	}
}

func TestJSONToYAMLBlockStyle(t *testing.T) {
	in := `{"title":{"text":"true"},"color":["#fff","#000"],"empty":""}`
	got, err := util.JSONToYAML([]byte(in), 2)
	if err != nil {
		t.Fatalf("JSONToYAML: %v", err)
	}
	out := string(got)
	for _, want := range []string{"title:\n", "  text: \"true\"\n", "color:\n", "  - '#fff'\n", "empty: \"\"\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
	if strings.Index(out, "title") > strings.Index(out, "color") {
		t.Errorf("key order not preserved:\n%s", out)
	}
}

func TestJSONYAMLRoundTrip(t *testing.T) {
	in := `{"series":[{"type":"bar","name":"a: b","data":[1,2,3]}],"backgroundColor":"#fff"}`
	y, err := util.JSONToYAML([]byte(in), 2)
	if err != nil {
		t.Fatalf("JSONToYAML: %v", err)
	}
	back, err := util.YAMLToJSON(y)
	if err != nil {
		t.Fatalf("YAMLToJSON: %v", err)
	}
	if string(back) != in {
		t.Errorf("round trip changed document\nwant: %s\ngot:  %s", in, back)
	}
}

func TestLooksLikeJSON(t *testing.T) {
	if !util.LooksLikeJSON([]byte("  {\"a\":1}")) {
		t.Error("object should look like JSON")
	}
	if util.LooksLikeJSON([]byte("a: 1")) {
		t.Error("YAML mapping should not look like JSON")
	}
}
