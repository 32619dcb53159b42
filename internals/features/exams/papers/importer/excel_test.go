package importer

import (
	"bytes"
	"testing"
)

func TestMatchHeadersVariants(t *testing.T) {
	cases := [][]string{
		{"Question", "Option A", "Option B", "Option C", "Option D", "Correct Option", "Marks"},
		{"question", "optionA", "optionB", "optionC", "optionD", "correctOption"},
		{"Question Text", "A", "B", "C", "D", "Answer", "Score"},
		{"SOAL", "option1", "option2", "option3", "option4", "ans"},
	}
	for _, header := range cases {
		cols, err := MatchHeaders(header)
		if err != nil {
			t.Fatalf("MatchHeaders(%v): %v", header, err)
		}
		for _, field := range []string{"question", "optiona", "optionb", "correct"} {
			if _, ok := cols[field]; !ok {
				t.Errorf("MatchHeaders(%v): missing %s", header, field)
			}
		}
	}
}

func TestMatchHeadersMissingRequired(t *testing.T) {
	_, err := MatchHeaders([]string{"Question", "Option A", "Correct Option"})
	if err == nil {
		t.Fatal("expected error when option B column is absent")
	}
}

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"Question", "Option A", "Option B", "Correct Option", "Marks"},
		{"2+2?", "4", "5", "a", "2"},
		{"", "x", "y", "A", ""},            // baris kosong, skip tanpa error
		{"3+3?", "6", "", "B", ""},         // option B kosong
		{"4+4?", "8", "9", "E", ""},        // jawaban tidak valid
		{"5+5?", "10", "11", "Option B", ""},
	}
	questions, rowErrs, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if questions[0].Correct != "A" || questions[0].Marks != 2 {
		t.Errorf("first question = %+v", questions[0])
	}
	if questions[1].Correct != "B" || questions[1].Marks != 1 {
		t.Errorf("second question = %+v", questions[1])
	}
	if len(rowErrs) != 2 {
		t.Fatalf("rowErrs = %v, want 2 entries", rowErrs)
	}
	if rowErrs[0].Row != 4 || rowErrs[1].Row != 5 {
		t.Errorf("row numbers = %d, %d; want 4, 5", rowErrs[0].Row, rowErrs[1].Row)
	}
}

func TestNormalizeCorrectOption(t *testing.T) {
	cases := map[string]string{
		"A":        "A",
		"b":        "B",
		"Option C": "C",
		"optionD":  "D",
		"1":        "A",
		"4":        "D",
		"E":        "",
		"":         "",
	}
	for in, want := range cases {
		if got := NormalizeCorrectOption(in); got != want {
			t.Errorf("NormalizeCorrectOption(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSampleWorkbookRoundTrip(t *testing.T) {
	wb, err := BuildSampleWorkbook()
	if err != nil {
		t.Fatalf("BuildSampleWorkbook: %v", err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	questions, rowErrs, err := ParseWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("rowErrs = %v, want none", rowErrs)
	}
	if len(questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(questions))
	}
	if questions[0].Correct != "A" {
		t.Errorf("sample correct option = %q, want A", questions[0].Correct)
	}
}
