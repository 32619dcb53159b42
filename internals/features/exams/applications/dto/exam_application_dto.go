package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	model "eduadmin_backend/internals/features/exams/applications/model"
)

/* =========================================================
   FlexTime: jadwal ujian datang dari dua sumber — API klien
   mengirim RFC3339, form admin mengirim datetime-local
   ("2006-01-02T15:04") tanpa detik dan zona.
   ========================================================= */

type FlexTime struct{ time.Time }

var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := sonic.Unmarshal(b, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range flexTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized time %q", raw)
}

// CreateApplicationsRequest mendaftarkan banyak siswa ke satu paper
// dalam satu transaksi. ExamPaperID boleh database id atau kode paper.
type CreateApplicationsRequest struct {
	ExamPaperID   string   `json:"exam_paper_id" validate:"required"`
	StudentIDs    []string `json:"student_ids" validate:"required,min=1,dive,required"`
	ScheduledTime FlexTime `json:"scheduled_time" validate:"required"`
	// PaperType tidak divalidasi ketat: nilai apa pun selain "offline"
	// dinormalkan menjadi "online" lewat ResolvedPaperType.
	PaperType string `json:"paper_type"`
}

// ResolvedPaperType: kosong jatuh ke mode paper, sisanya dinormalkan.
func (r CreateApplicationsRequest) ResolvedPaperType(paperMode string) string {
	pt := strings.TrimSpace(r.PaperType)
	if pt == "" {
		pt = paperMode
	}
	return model.NormalizePaperType(pt)
}

type SubjectMarkInput struct {
	SubjectID         uuid.UUID `json:"subject_id" validate:"required"`
	SubjectName       string    `json:"subject_name"`
	TotalMarks        float64   `json:"total_marks" validate:"min=0"`
	PracticalMarks    float64   `json:"practical_marks" validate:"min=0"`
	ObtainedMarks     float64   `json:"obtained_marks" validate:"min=0"`
	ObtainedPractical float64   `json:"obtained_practical" validate:"min=0"`
}

// MarksRequest dipakai verify maupun approve.
type MarksRequest struct {
	SubjectMarks []SubjectMarkInput `json:"subject_marks" validate:"required,min=1,dive"`
}

func (r MarksRequest) ToSubjectMarks() []model.SubjectMark {
	out := make([]model.SubjectMark, 0, len(r.SubjectMarks))
	for _, in := range r.SubjectMarks {
		out = append(out, model.SubjectMark{
			SubjectID:         in.SubjectID,
			SubjectName:       in.SubjectName,
			TotalMarks:        in.TotalMarks,
			PracticalMarks:    in.PracticalMarks,
			ObtainedMarks:     in.ObtainedMarks,
			ObtainedPractical: in.ObtainedPractical,
		})
	}
	return out
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}
