package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseOn(t *testing.T, target string, opt PageOptions) PageParams {
	t.Helper()
	app := fiber.New()
	var got PageParams
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ParsePageWith(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestParsePageDefaults(t *testing.T) {
	p := parseOn(t, "/items", DefaultOpts)
	if p.Page != 1 || p.PerPage != 25 {
		t.Errorf("page/perPage = %d/%d, want 1/25", p.Page, p.PerPage)
	}
	if p.SortBy != "created_at" || p.SortOrder != "desc" {
		t.Errorf("sort = %s %s, want created_at desc", p.SortBy, p.SortOrder)
	}
}

func TestParsePageClampsAndOffset(t *testing.T) {
	p := parseOn(t, "/items?page=3&per_page=9999&sort_order=asc", DefaultOpts)
	if p.PerPage != DefaultOpts.MaxPerPage {
		t.Errorf("perPage = %d, want clamped to %d", p.PerPage, DefaultOpts.MaxPerPage)
	}
	if p.SortOrder != "asc" {
		t.Errorf("sortOrder = %s, want asc", p.SortOrder)
	}
	if got := p.Offset(); got != 2*DefaultOpts.MaxPerPage {
		t.Errorf("offset = %d, want %d", got, 2*DefaultOpts.MaxPerPage)
	}
}

func TestParsePageRejectsGarbage(t *testing.T) {
	p := parseOn(t, "/items?page=-4&per_page=abc&sort_order=sideways", DefaultOpts)
	if p.Page != 1 || p.PerPage != 25 || p.SortOrder != "desc" {
		t.Errorf("params = %+v, want defaults back", p)
	}
}

func TestOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{"name": "student_name", "created_at": "created_at"}

	p := PageParams{SortBy: "name", SortOrder: "asc"}
	if got := p.OrderClause(allowed); got != "student_name ASC" {
		t.Errorf("clause = %q, want student_name ASC", got)
	}

	// Kolom di luar whitelist tidak boleh bocor ke SQL.
	p = PageParams{SortBy: "student_name; DROP TABLE students", SortOrder: "desc"}
	clause := p.OrderClause(allowed)
	if clause != "student_name DESC" && clause != "created_at DESC" {
		t.Errorf("clause = %q, want a whitelisted column", clause)
	}
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(PageParams{Page: 2, PerPage: 25}, 51)
	if meta.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", meta.TotalPages)
	}
	meta = NewPageMeta(PageParams{Page: 1, PerPage: 25}, 0)
	if meta.TotalPages != 1 {
		t.Errorf("totalPages for empty set = %d, want 1", meta.TotalPages)
	}
}
