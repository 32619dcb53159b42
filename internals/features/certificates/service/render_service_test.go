package service

import (
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	model "eduadmin_backend/internals/features/certificates/model"
	appModel "eduadmin_backend/internals/features/exams/applications/model"
	studentModel "eduadmin_backend/internals/features/institute/students/model"
)

func sampleApplication(t *testing.T) *appModel.ExamApplication {
	t.Helper()
	pct := 85.5
	cert := "12345678"
	approved := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	marks, err := sonic.Marshal([]appModel.SubjectMark{
		{SubjectName: "Computer Fundamentals", TotalMarks: 100, ObtainedMarks: 85, PracticalMarks: 50, ObtainedPractical: 43},
	})
	if err != nil {
		t.Fatal(err)
	}
	return &appModel.ExamApplication{
		ExamApplicationStatus:          appModel.AppStatusApproved,
		ExamApplicationPercentage:      &pct,
		ExamApplicationCertificateNo:   &cert,
		ExamApplicationApprovedAt:      &approved,
		ExamApplicationStudentName:     "Jane Roe",
		ExamApplicationStudentIDNumber: "STU-20250101-0001",
		ExamApplicationSubjectMarks:    datatypes.JSON(marks),
	}
}

func TestFieldValues(t *testing.T) {
	app := sampleApplication(t)
	student := &studentModel.Student{StudentPhotoURL: "https://cdn.example.com/p.webp"}

	values := FieldValues(app, student, "Diploma in Computer Applications")
	if values["student_name"] != "Jane Roe" {
		t.Errorf("student_name = %q", values["student_name"])
	}
	if values["percentage"] != "85.50%" {
		t.Errorf("percentage = %q, want 85.50%%", values["percentage"])
	}
	if values["grade"] != "A" {
		t.Errorf("grade = %q, want A", values["grade"])
	}
	if values["certificate_no"] != "12345678" {
		t.Errorf("certificate_no = %q", values["certificate_no"])
	}
	if values["issue_date"] != "01 May 2025" {
		t.Errorf("issue_date = %q", values["issue_date"])
	}
}

func sampleTemplate(t *testing.T, tmplType string) *model.TemplateConfig {
	t.Helper()
	fields, err := sonic.Marshal(map[string]model.FieldStyle{
		"student_name":   {TopPct: 40, LeftPct: 30, FontSize: 28, Color: "#222", Visible: true},
		"certificate_no": {TopPct: 90, LeftPct: 10, FontSize: 12, Visible: true},
		"photo_url":      {TopPct: 10, LeftPct: 80, Visible: false},
	})
	if err != nil {
		t.Fatal(err)
	}
	return &model.TemplateConfig{
		TemplateConfigCode:   "classic",
		TemplateConfigType:   tmplType,
		TemplateConfigBgURL:  "https://cdn.example.com/bg.webp",
		TemplateConfigFields: datatypes.JSON(fields),
	}
}

func TestBuildLayoutSkipsHiddenFields(t *testing.T) {
	app := sampleApplication(t)
	values := FieldValues(app, nil, "DCA")

	layout, err := BuildLayout(sampleTemplate(t, model.TemplateTypeCertificate), values, app)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	if len(layout.Fields) != 2 {
		t.Fatalf("fields = %d, want 2 (hidden field skipped)", len(layout.Fields))
	}
	for _, f := range layout.Fields {
		if f.Name == "photo_url" {
			t.Error("hidden field leaked into layout")
		}
	}
	if len(layout.SubjectRows) != 0 {
		t.Error("certificate layout must not carry subject rows")
	}
}

func TestBuildLayoutMarksheetRows(t *testing.T) {
	app := sampleApplication(t)
	values := FieldValues(app, nil, "DCA")

	layout, err := BuildLayout(sampleTemplate(t, model.TemplateTypeMarksheet), values, app)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	if len(layout.SubjectRows) != 1 {
		t.Fatalf("subject rows = %d, want 1", len(layout.SubjectRows))
	}
	row := layout.SubjectRows[0]
	if row.Obtained != 128 || row.Max != 150 {
		t.Errorf("row obtained/max = %v/%v, want 128/150", row.Obtained, row.Max)
	}
}

func TestRenderHTML(t *testing.T) {
	app := sampleApplication(t)
	values := FieldValues(app, nil, "DCA")
	layout, err := BuildLayout(sampleTemplate(t, model.TemplateTypeMarksheet), values, app)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	html, err := RenderHTML(layout)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	doc := string(html)
	for _, want := range []string{"Jane Roe", "12345678", "Computer Fundamentals", "bg.webp"} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}
}
