package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `json:"name"`
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}

func TestWrite_JSONDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{Name: "ana", Score: 7, Tags: []string{"a"}}, "", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if got != `{"name":"ana","score":7,"tags":["a"]}` {
		t.Fatalf("json output = %q", got)
	}
}

func TestWrite_EDNKeywordsAndInts(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{Name: "ana", Score: 7}, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if !strings.Contains(got, `:name "ana"`) {
		t.Fatalf("edn keys not keywordized: %q", got)
	}
	if !strings.Contains(got, ":score 7") {
		t.Fatalf("integral float not printed as int: %q", got)
	}
}

func TestWrite_EDNPrettyIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{Name: "ana", Tags: []string{"a", "b"}}, "edn", true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  :name") {
		t.Fatalf("pretty edn not indented: %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{}, "yaml", false); err == nil {
		t.Fatalf("unknown format accepted")
	}
}
