package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	model "eduadmin_backend/internals/features/exams/papers/model"
)

func TestCreatePaperRequestWindow(t *testing.T) {
	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	req := CreatePaperRequest{ExamPaperStartAt: &start, ExamPaperEndAt: &end}
	if err := req.Validate(); err == nil {
		t.Error("expected error when end is before start")
	}

	end = start.Add(2 * time.Hour)
	req.ExamPaperEndAt = &end
	if err := req.Validate(); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
}

func TestCreatePaperRequestDefaults(t *testing.T) {
	req := CreatePaperRequest{
		ExamPaperCode:     "P1",
		ExamPaperName:     "Computer Basics Main",
		ExamPaperCourseID: uuid.New(),
		Subjects: []SubjectConfigInput{
			{SubjectID: uuid.New(), QuestionCount: 20, PassingMarks: 8},
		},
	}
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ExamPaperType != model.PaperTypeMain {
		t.Errorf("type = %q, want Main", m.ExamPaperType)
	}
	if m.ExamPaperMode != model.PaperModeOnline {
		t.Errorf("mode = %q, want online", m.ExamPaperMode)
	}
	if m.ExamPaperStatus != model.PaperStatusInactive {
		t.Errorf("status = %q, new papers must start inactive", m.ExamPaperStatus)
	}
	if m.ExamPaperDuration != 60 || m.ExamPaperPosMarks != 1 {
		t.Errorf("duration/posMarks = %d/%v, want 60/1", m.ExamPaperDuration, m.ExamPaperPosMarks)
	}

	var configs []model.SubjectConfig
	if err := json.Unmarshal(m.ExamPaperSubjects, &configs); err != nil {
		t.Fatalf("subjects json: %v", err)
	}
	if len(configs) != 1 || configs[0].QuestionCount != 20 {
		t.Errorf("configs = %+v", configs)
	}
}
