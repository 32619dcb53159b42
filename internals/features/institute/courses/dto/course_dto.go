package dto

import (
	"github.com/google/uuid"

	model "eduadmin_backend/internals/features/institute/courses/model"
)

type SubjectInput struct {
	SubjectName                string `json:"subject_name" validate:"required,min=2"`
	SubjectTotalTheoryMarks    int    `json:"subject_total_theory_marks" validate:"min=0"`
	SubjectTotalPracticalMarks int    `json:"subject_total_practical_marks" validate:"min=0"`
}

type CreateCourseRequest struct {
	CourseName           string         `json:"course_name" validate:"required,min=3"`
	CourseDurationMonths int            `json:"course_duration_months" validate:"min=0"`
	CourseFee            float64        `json:"course_fee" validate:"min=0"`
	Subjects             []SubjectInput `json:"subjects" validate:"dive"`
}

type UpdateCourseRequest struct {
	CourseName           *string  `json:"course_name"`
	CourseDurationMonths *int     `json:"course_duration_months"`
	CourseFee            *float64 `json:"course_fee"`
	CourseIsActive       *bool    `json:"course_is_active"`
}

type AddSubjectRequest struct {
	SubjectInput
	SubjectSortOrder *int `json:"subject_sort_order"`
}

func (r CreateCourseRequest) ToModel() *model.Course {
	course := &model.Course{
		CourseName:           r.CourseName,
		CourseDurationMonths: r.CourseDurationMonths,
		CourseFee:            r.CourseFee,
		CourseIsActive:       true,
	}
	for i, s := range r.Subjects {
		course.Subjects = append(course.Subjects, model.Subject{
			SubjectName:                s.SubjectName,
			SubjectTotalTheoryMarks:    s.SubjectTotalTheoryMarks,
			SubjectTotalPracticalMarks: s.SubjectTotalPracticalMarks,
			SubjectSortOrder:           i,
		})
	}
	return course
}

func (r UpdateCourseRequest) Apply(m *model.Course) {
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CourseDurationMonths != nil {
		m.CourseDurationMonths = *r.CourseDurationMonths
	}
	if r.CourseFee != nil {
		m.CourseFee = *r.CourseFee
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
}

func (r AddSubjectRequest) ToModel(courseID uuid.UUID, nextOrder int) *model.Subject {
	order := nextOrder
	if r.SubjectSortOrder != nil {
		order = *r.SubjectSortOrder
	}
	return &model.Subject{
		SubjectCourseID:            courseID,
		SubjectName:                r.SubjectName,
		SubjectTotalTheoryMarks:    r.SubjectTotalTheoryMarks,
		SubjectTotalPracticalMarks: r.SubjectTotalPracticalMarks,
		SubjectSortOrder:           order,
	}
}
