package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = PageOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PageOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PageParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

func ParsePage(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) PageParams {
	return ParsePageWith(c, defaultSortBy, defaultSortOrder, DefaultOpts)
}

func ParsePageWith(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt PageOptions) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	perPage := atoiDefault(c.Query("per_page"), opt.DefaultPerPage)
	if perPage < 1 {
		perPage = opt.DefaultPerPage
	}
	if perPage > opt.MaxPerPage {
		perPage = opt.MaxPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortOrder := strings.ToLower(strings.TrimSpace(c.Query("sort_order")))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = defaultSortOrder
	}

	return PageParams{Page: page, PerPage: perPage, SortBy: sortBy, SortOrder: sortOrder}
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p PageParams) OrderClause(allowed map[string]string) string {
	col, ok := allowed[p.SortBy]
	if !ok {
		for _, v := range allowed {
			col = v
			break
		}
	}
	if col == "" {
		return ""
	}
	dir := "ASC"
	if p.SortOrder == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}

type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPageMeta(p PageParams, total int64) PageMeta {
	pages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if pages < 1 {
		pages = 1
	}
	return PageMeta{Page: p.Page, PerPage: p.PerPage, Total: total, TotalPages: pages}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
