package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

/*
Bulk import bank soal dari .xlsx/.xls. Nama kolom di file admin bervariasi,
jadi header di-fuzzy-match terhadap beberapa varian yang diterima
(Question/question/Question Text…, Option A/optionA/A…, Correct
Option/correctOption/Answer…). Template contoh bisa diunduh.
*/

type ParsedQuestion struct {
	Text    string
	OptionA string
	OptionB string
	OptionC string
	OptionD string
	Correct string // A|B|C|D
	Marks   float64
}

type RowError struct {
	Row     int // 1-based baris Excel
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Varian header yang diterima, dibandingkan setelah normalisasi
// (lowercase, buang spasi dan tanda baca).
var headerVariants = map[string][]string{
	"question": {"question", "questiontext", "questions", "soal"},
	"optiona":  {"optiona", "option1", "opta", "a"},
	"optionb":  {"optionb", "option2", "optb", "b"},
	"optionc":  {"optionc", "option3", "optc", "c"},
	"optiond":  {"optiond", "option4", "optd", "d"},
	"correct":  {"correctoption", "correct", "answer", "correctanswer", "ans"},
	"marks":    {"marks", "mark", "score", "points"},
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchHeaders petakan baris header → indeks kolom per field.
// question, optiona, optionb, dan correct wajib ada.
func MatchHeaders(headerRow []string) (map[string]int, error) {
	cols := map[string]int{}
	for i, raw := range headerRow {
		norm := normalizeHeader(raw)
		if norm == "" {
			continue
		}
		for field, variants := range headerVariants {
			if _, taken := cols[field]; taken {
				continue
			}
			for _, v := range variants {
				if norm == v {
					cols[field] = i
					break
				}
			}
		}
	}
	for _, required := range []string{"question", "optiona", "optionb", "correct"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}
	return cols, nil
}

func cell(row []string, idx int, ok bool) string {
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseRows bangun daftar soal dari rows (termasuk header di rows[0]).
// Baris invalid dikumpulkan sebagai RowError, baris valid tetap diproses.
func ParseRows(rows [][]string) ([]ParsedQuestion, []RowError, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty sheet")
	}
	cols, err := MatchHeaders(rows[0])
	if err != nil {
		return nil, nil, err
	}

	var (
		questions []ParsedQuestion
		rowErrs   []RowError
	)
	for i, row := range rows[1:] {
		excelRow := i + 2

		qIdx, qOk := cols["question"]
		text := cell(row, qIdx, qOk)
		if text == "" {
			continue // baris kosong di tengah file itu biasa, skip diam-diam
		}

		aIdx, aOk := cols["optiona"]
		bIdx, bOk := cols["optionb"]
		cIdx, cOk := cols["optionc"]
		dIdx, dOk := cols["optiond"]
		corrIdx, corrOk := cols["correct"]
		marksIdx, marksOk := cols["marks"]

		q := ParsedQuestion{
			Text:    text,
			OptionA: cell(row, aIdx, aOk),
			OptionB: cell(row, bIdx, bOk),
			OptionC: cell(row, cIdx, cOk),
			OptionD: cell(row, dIdx, dOk),
			Correct: NormalizeCorrectOption(cell(row, corrIdx, corrOk)),
			Marks:   1,
		}
		if q.OptionA == "" || q.OptionB == "" {
			rowErrs = append(rowErrs, RowError{Row: excelRow, Message: "option A and B are required"})
			continue
		}
		if q.Correct == "" {
			rowErrs = append(rowErrs, RowError{Row: excelRow, Message: "correct option must be A, B, C, or D"})
			continue
		}
		if raw := cell(row, marksIdx, marksOk); raw != "" {
			if m, err := strconv.ParseFloat(raw, 64); err == nil && m > 0 {
				q.Marks = m
			}
		}
		questions = append(questions, q)
	}
	return questions, rowErrs, nil
}

// NormalizeCorrectOption terima "A", "a", "Option B", "optionC", "1".."4".
func NormalizeCorrectOption(raw string) string {
	norm := normalizeHeader(raw)
	norm = strings.TrimPrefix(norm, "option")
	switch norm {
	case "a", "1":
		return "A"
	case "b", "2":
		return "B"
	case "c", "3":
		return "C"
	case "d", "4":
		return "D"
	}
	return ""
}

// ParseWorkbook baca sheet pertama dari file .xlsx.
func ParseWorkbook(r io.Reader) ([]ParsedQuestion, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}
	return ParseRows(rows)
}

// BuildSampleWorkbook buat template contoh yang bisa diunduh admin.
func BuildSampleWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Question", "Option A", "Option B", "Option C", "Option D", "Correct Option", "Marks"}
	for i, h := range headers {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			return nil, err
		}
	}

	sample := []interface{}{"What does CPU stand for?", "Central Processing Unit", "Computer Personal Unit", "Central Process Utility", "Control Processing Unit", "A", 1}
	for i, v := range sample {
		cellName, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, v); err != nil {
			return nil, err
		}
	}
	return f, nil
}
