package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"todo/internal/api"
	"todo/internal/service"
)

var sample = []service.Task{
	{ID: "1", Title: "A", Description: ""},
	{ID: "2", Title: "B, with comma", Description: "x"},
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, "JSON"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []api.Task
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 2 || got[1].Title != "B, with comma" {
		t.Errorf("unexpected tasks %+v", got)
	}
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("expected [], got %q", buf.String())
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, "csv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "id,title,description\n1,A,\n2,\"B, with comma\",x\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWrite_PDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, "pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", buf.Bytes()[:8])
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, "xml"); err == nil {
		t.Error("expected error")
	}
}
