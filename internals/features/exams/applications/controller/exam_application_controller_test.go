package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/exams/applications/dto"
	model "eduadmin_backend/internals/features/exams/applications/model"
)

// Jalur validasi berhenti sebelum menyentuh database, jadi controller
// dengan DB nil aman dipakai di sini.
func newTestApp() *fiber.App {
	ctl := NewExamApplicationController(nil)
	app := fiber.New()
	app.Post("/api/exam-applications", ctl.Create)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	app := newTestApp()
	if code := postJSON(t, app, "/api/exam-applications", "{not json"); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestCreateRejectsEmptyStudentList(t *testing.T) {
	app := newTestApp()
	body := `{"exam_paper_id":"P1","student_ids":[],"scheduled_time":"2025-05-01T10:00:00Z"}`
	if code := postJSON(t, app, "/api/exam-applications", body); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestCreateRejectsMissingSchedule(t *testing.T) {
	app := newTestApp()
	body := `{"exam_paper_id":"P1","student_ids":["S1"]}`
	if code := postJSON(t, app, "/api/exam-applications", body); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

// paper_type aneh tidak ditolak validasi; jalur create menormalkannya online.
func TestCreateAcceptsUnknownPaperType(t *testing.T) {
	body := `{"exam_paper_id":"P1","student_ids":["S1"],"scheduled_time":"2025-05-01T10:00","paper_type":"hybrid"}`
	var req dto.CreateApplicationsRequest
	if err := sonic.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ctl := NewExamApplicationController(nil)
	if err := ctl.Validator.Struct(req); err != nil {
		t.Errorf("validate: %v", err)
	}
	if got := req.ResolvedPaperType("online"); got != "online" {
		t.Errorf("ResolvedPaperType = %q, want online", got)
	}
}

// Baris list selalu memuat percentage (0 kalau belum dinilai) dan
// paper type yang sudah dinormalkan.
func TestApplicationRowNormalize(t *testing.T) {
	row := applicationRow{
		ExamApplication: model.ExamApplication{
			ExamApplicationStatus:    model.AppStatusScheduled,
			ExamApplicationPaperType: "",
		},
	}
	row.normalize()

	if row.ExamApplicationPaperType != model.PaperTypeOnline {
		t.Errorf("paper type = %q, want online", row.ExamApplicationPaperType)
	}
	if row.ExamApplicationPercentage == nil || *row.ExamApplicationPercentage != 0 {
		t.Errorf("percentage = %v, want 0", row.ExamApplicationPercentage)
	}

	payload, err := sonic.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"exam_application_percentage":0`) {
		t.Errorf("payload missing percentage key: %s", payload)
	}
	if !strings.Contains(string(payload), `"exam_application_paper_type":"online"`) {
		t.Errorf("payload missing normalized paper type: %s", payload)
	}
}

// newDryRunDB membangun SQL tanpa koneksi; callback menangkap query terakhir.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	var captured string
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return db, &captured
}

// Filter centerId mengikuti keanggotaan siswa saat query, bukan snapshot
// center yang terekam di aplikasi.
func TestListCenterFilterUsesStudentMembership(t *testing.T) {
	db, captured := newDryRunDB(t)
	ctl := NewExamApplicationController(db)
	app := fiber.New()
	app.Get("/api/exam-applications", ctl.List)

	req := httptest.NewRequest("GET", "/api/exam-applications?centerId=7c9e6679-7425-40de-944b-e07fc1f90ae7", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(*captured, "students.student_center_id") {
		t.Errorf("query filters %q, want students.student_center_id", *captured)
	}
	if strings.Contains(*captured, "exam_application_center_id") {
		t.Errorf("query still filters application center snapshot: %q", *captured)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV("scheduled, approved,,completed ")
	want := []string{"scheduled", "approved", "completed"}
	if len(got) != len(want) {
		t.Fatalf("splitCSV = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
