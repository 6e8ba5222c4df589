package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

type row struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type rows []row

func (rs rows) WriteText(w io.Writer) error {
	for _, r := range rs {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Title); err != nil {
			return err
		}
	}
	return nil
}

func TestWrite(t *testing.T) {
	v := rows{{ID: 9007199254740993, Title: "a \"b\"", Done: true}}
	cases := []struct {
		format string
		pretty bool
		want   string
	}{
		{"", false, "9007199254740993\ta \"b\"\n"},
		{"text", false, "9007199254740993\ta \"b\"\n"},
		{"json", false, `{"data":[{"id":9007199254740993,"title":"a \"b\"","done":true}]}` + "\n"},
		{"edn", false, `{:data [{:done true :id 9007199254740993 :title "a \"b\""}]}` + "\n"},
		{"edn", true, "{\n  :data [\n    {\n      :done true\n      :id 9007199254740993\n      :title \"a \\\"b\\\"\"\n    }\n  ]\n}\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := Write(&buf, v, tc.format, tc.pretty); err != nil {
			t.Fatalf("Write(%q): %v", tc.format, err)
		}
		if got := buf.String(); got != tc.want {
			t.Fatalf("Write(%q, pretty=%v):\nwant %q\ngot  %q", tc.format, tc.pretty, tc.want, got)
		}
	}
}

func TestWrite_EmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, rows{}, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{:data []}\n" {
		t.Fatalf("unexpected edn: %q", got)
	}
	buf.Reset()
	if err := Write(&buf, rows{}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != `{"data":[]}`+"\n" {
		t.Fatalf("unexpected json: %q", got)
	}
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 42, "text", false); err == nil {
		t.Fatalf("expected error for a value without a text form")
	}
	if err := Write(&buf, rows{}, "yaml", false); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
	if err := Validate("edn"); err != nil {
		t.Fatalf("Validate(edn): %v", err)
	}
}
