package service

import (
	"testing"

	model "eduadmin_backend/internals/features/exams/applications/model"
)

func TestComputeResultTheoryPlusPractical(t *testing.T) {
	res := ComputeResult([]model.SubjectMark{
		{TotalMarks: 100, PracticalMarks: 50, ObtainedMarks: 80, ObtainedPractical: 40},
	})
	if res.Percentage != 80.00 {
		t.Fatalf("percentage = %v, want 80.00", res.Percentage)
	}
	if res.Obtained != 120 || res.Max != 150 {
		t.Errorf("obtained/max = %v/%v, want 120/150", res.Obtained, res.Max)
	}
	if res.Grade != "A" {
		t.Errorf("grade = %q, want A", res.Grade)
	}
}

func TestComputeResultZeroMax(t *testing.T) {
	res := ComputeResult([]model.SubjectMark{
		{TotalMarks: 0, PracticalMarks: 0, ObtainedMarks: 0, ObtainedPractical: 0},
	})
	if res.Percentage != 0 {
		t.Fatalf("percentage = %v, want 0", res.Percentage)
	}
	if res.Grade != "D" {
		t.Errorf("grade = %q, want D", res.Grade)
	}
}

func TestComputeResultRoundsTwoDecimals(t *testing.T) {
	res := ComputeResult([]model.SubjectMark{
		{TotalMarks: 3, ObtainedMarks: 1},
	})
	if res.Percentage != 33.33 {
		t.Fatalf("percentage = %v, want 33.33", res.Percentage)
	}
}

func TestComputeResultMultipleSubjects(t *testing.T) {
	res := ComputeResult([]model.SubjectMark{
		{TotalMarks: 100, ObtainedMarks: 90},
		{TotalMarks: 100, PracticalMarks: 50, ObtainedMarks: 70, ObtainedPractical: 45},
	})
	// (90+70+45)/(100+100+50) = 205/250 = 82.00
	if res.Percentage != 82.00 {
		t.Fatalf("percentage = %v, want 82.00", res.Percentage)
	}
}

func TestGradeBands(t *testing.T) {
	cases := map[float64]string{
		100:   "A+",
		90:    "A+",
		89.99: "A",
		80:    "A",
		79.99: "B+",
		70:    "B+",
		60:    "B",
		50:    "C",
		49.99: "D",
		0:     "D",
	}
	for pct, want := range cases {
		if got := GradeFor(pct); got != want {
			t.Errorf("GradeFor(%v) = %q, want %q", pct, got, want)
		}
	}
}

func TestRandomCertificateNoFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		no, err := randomCertificateNo()
		if err != nil {
			t.Fatalf("randomCertificateNo: %v", err)
		}
		if len(no) != 8 {
			t.Fatalf("certificate no %q is not 8 digits", no)
		}
		if no[0] == '0' {
			t.Fatalf("certificate no %q starts with zero", no)
		}
	}
}
