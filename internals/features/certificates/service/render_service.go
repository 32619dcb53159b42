package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/bytedance/sonic"

	appModel "eduadmin_backend/internals/features/exams/applications/model"
	appSvc "eduadmin_backend/internals/features/exams/applications/service"
	model "eduadmin_backend/internals/features/certificates/model"
	studentModel "eduadmin_backend/internals/features/institute/students/model"
)

/* =========================================================
   Renderer sertifikat/marksheet. Semua nilai field dihitung di
   server dari aplikasi yang sudah approved; keluaran bisa layout
   JSON (untuk editor) atau dokumen HTML siap print.
   ========================================================= */

// PositionedField: satu field dengan nilai + gaya posisinya.
type PositionedField struct {
	Name  string           `json:"name"`
	Value string           `json:"value"`
	Style model.FieldStyle `json:"style"`
}

type SubjectRow struct {
	SubjectName string  `json:"subject_name"`
	Obtained    float64 `json:"obtained"`
	Max         float64 `json:"max"`
}

type RenderLayout struct {
	TemplateCode  string            `json:"template_code"`
	TemplateType  string            `json:"template_type"`
	BackgroundURL string            `json:"background_url"`
	Fields        []PositionedField `json:"fields"`
	SubjectRows   []SubjectRow      `json:"subject_rows,omitempty"`
}

// FieldValues menghitung nilai tiap field standar dari aplikasi approved.
func FieldValues(app *appModel.ExamApplication, student *studentModel.Student, courseName string) map[string]string {
	pct := 0.0
	if app.ExamApplicationPercentage != nil {
		pct = *app.ExamApplicationPercentage
	}
	certNo := ""
	if app.ExamApplicationCertificateNo != nil {
		certNo = *app.ExamApplicationCertificateNo
	}
	issued := time.Now()
	if app.ExamApplicationApprovedAt != nil {
		issued = *app.ExamApplicationApprovedAt
	}
	name := app.ExamApplicationStudentName
	idNumber := app.ExamApplicationStudentIDNumber
	photo := ""
	if student != nil {
		if name == "" {
			name = student.StudentName
		}
		if idNumber == "" {
			idNumber = student.StudentIDNumber
		}
		photo = student.StudentPhotoURL
	}
	return map[string]string{
		"student_name":      name,
		"student_id_number": idNumber,
		"course_name":       courseName,
		"percentage":        fmt.Sprintf("%.2f%%", pct),
		"grade":             appSvc.GradeFor(pct),
		"certificate_no":    certNo,
		"issue_date":        issued.Format("02 January 2006"),
		"photo_url":         photo,
	}
}

// BuildLayout menggabungkan template + nilai jadi layout terposisi.
// Field tak dikenal tetap dibawa dengan value kosong (template bisa
// punya field statis yang diisi manual lewat editor).
func BuildLayout(tmpl *model.TemplateConfig, values map[string]string, app *appModel.ExamApplication) (*RenderLayout, error) {
	var styles map[string]model.FieldStyle
	if len(tmpl.TemplateConfigFields) > 0 {
		if err := sonic.Unmarshal(tmpl.TemplateConfigFields, &styles); err != nil {
			return nil, err
		}
	}

	layout := &RenderLayout{
		TemplateCode:  tmpl.TemplateConfigCode,
		TemplateType:  tmpl.TemplateConfigType,
		BackgroundURL: tmpl.TemplateConfigBgURL,
	}
	for name, style := range styles {
		if !style.Visible {
			continue
		}
		layout.Fields = append(layout.Fields, PositionedField{
			Name:  name,
			Value: values[name],
			Style: style,
		})
	}

	if tmpl.TemplateConfigType == model.TemplateTypeMarksheet && len(app.ExamApplicationSubjectMarks) > 0 {
		var marks []appModel.SubjectMark
		if err := sonic.Unmarshal(app.ExamApplicationSubjectMarks, &marks); err != nil {
			return nil, err
		}
		for _, m := range marks {
			layout.SubjectRows = append(layout.SubjectRows, SubjectRow{
				SubjectName: m.SubjectName,
				Obtained:    m.ObtainedMarks + m.ObtainedPractical,
				Max:         m.TotalMarks + m.PracticalMarks,
			})
		}
	}
	return layout, nil
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.TemplateType}} {{.TemplateCode}}</title>
<style>
  @page { size: A4 landscape; margin: 0; }
  body { margin: 0; }
  .sheet { position: relative; width: 1123px; height: 794px;
           background-image: url('{{.BackgroundURL}}');
           background-size: 100% 100%; background-repeat: no-repeat; }
  .field { position: absolute; white-space: nowrap; }
  table.marks { position: absolute; top: 55%; left: 10%; width: 80%;
                border-collapse: collapse; font-family: serif; }
  table.marks td, table.marks th { border: 1px solid #444; padding: 4px 10px; }
</style>
</head>
<body onload="window.print()">
<div class="sheet">
{{- range .Fields}}
  <span class="field" style="top:{{.Style.TopPct}}%;left:{{.Style.LeftPct}}%;font-size:{{.Style.FontSize}}px;font-weight:{{.Style.FontWeight}};font-style:{{.Style.FontStyle}};color:{{.Style.Color}};font-family:{{.Style.FontFamily}}">{{.Value}}</span>
{{- end}}
{{- if .SubjectRows}}
  <table class="marks">
    <tr><th>Subject</th><th>Obtained</th><th>Maximum</th></tr>
    {{- range .SubjectRows}}
    <tr><td>{{.SubjectName}}</td><td>{{printf "%.2f" .Obtained}}</td><td>{{printf "%.2f" .Max}}</td></tr>
    {{- end}}
  </table>
{{- end}}
</div>
</body>
</html>
`))

// RenderHTML memulangkan dokumen print-ready dari layout.
func RenderHTML(layout *RenderLayout) ([]byte, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, layout); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
