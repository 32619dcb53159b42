package dto

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

// Persis payload yang dikirim form admin: scheduled_time format
// datetime-local tanpa detik, paper_type offline.
func TestCreateRequestAcceptsDatetimeLocalSchedule(t *testing.T) {
	body := `{"exam_paper_id":"P1","student_ids":["S1","S2"],"scheduled_time":"2025-05-01T10:00","paper_type":"offline"}`

	var req CreateApplicationsRequest
	if err := sonic.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := validator.New().Struct(req); err != nil {
		t.Fatalf("validate: %v", err)
	}

	want := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	if !req.ScheduledTime.Time.Equal(want) {
		t.Errorf("scheduled time = %v, want %v", req.ScheduledTime.Time, want)
	}
	if len(req.StudentIDs) != 2 {
		t.Errorf("student ids = %v, want 2 entries", req.StudentIDs)
	}
	if got := req.ResolvedPaperType("online"); got != "offline" {
		t.Errorf("paper type = %q, want offline", got)
	}
}

func TestFlexTimeLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{`"2025-05-01T10:00:00Z"`, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
		{`"2025-05-01T10:00:30"`, time.Date(2025, 5, 1, 10, 0, 30, 0, time.UTC)},
		{`"2025-05-01T10:00"`, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var ft FlexTime
		if err := ft.UnmarshalJSON([]byte(tc.raw)); err != nil {
			t.Errorf("UnmarshalJSON(%s): %v", tc.raw, err)
			continue
		}
		if !ft.Time.Equal(tc.want) {
			t.Errorf("UnmarshalJSON(%s) = %v, want %v", tc.raw, ft.Time, tc.want)
		}
	}

	var ft FlexTime
	if err := ft.UnmarshalJSON([]byte(`"besok pagi"`)); err == nil {
		t.Error("UnmarshalJSON accepted garbage timestamp")
	}
}

func TestResolvedPaperType(t *testing.T) {
	cases := []struct {
		in        string
		paperMode string
		want      string
	}{
		{"offline", "online", "offline"},
		{"online", "offline", "online"},
		{"hybrid", "online", "online"},
		{"OFFLINE", "online", "online"},
		{"", "offline", "offline"},
		{"", "online", "online"},
		{"", "", "online"},
	}
	for _, tc := range cases {
		req := CreateApplicationsRequest{PaperType: tc.in}
		if got := req.ResolvedPaperType(tc.paperMode); got != tc.want {
			t.Errorf("ResolvedPaperType(%q, mode=%q) = %q, want %q", tc.in, tc.paperMode, got, tc.want)
		}
	}
}
