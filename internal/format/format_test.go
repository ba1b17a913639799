package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"b": 2, "a": 1}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != `{"a":1,"b":2}`+"\n" {
		t.Fatalf("got %q", got)
	}

	buf.Reset()
	if err := Write(&buf, map[string]any{"a": 1}, "json", true); err != nil {
		t.Fatalf("Write pretty: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "\n  \"a\": 1") {
		t.Fatalf("pretty output not indented: %q", got)
	}
}

func TestWriteEDN(t *testing.T) {
	type payload struct {
		Title string   `json:"title"`
		Count int      `json:"count"`
		Done  bool     `json:"done"`
		Tags  []string `json:"tags"`
		Blank *string  `json:"blank"`
	}
	v := payload{Title: "Deploy site", Count: 3, Done: true, Tags: []string{"a", "b"}}

	var buf bytes.Buffer
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:blank nil :count 3 :done true :tags ["a" "b"] :title "Deploy site"}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestWriteEDNFloats(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"ratio": 0.5, "whole": 2.0}, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	if got := buf.String(); got != `{:ratio 0.5 :whole 2}`+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 1, "yaml", false); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestWriteEDNPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []any{1, 2}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :a [\n    1\n    2\n  ]\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}
