package dto

import model "eduadmin_backend/internals/features/cms/model"

type UpsertContentRequest struct {
	Section string `json:"section" validate:"required,min=1,max=64"`
	Key     string `json:"key" validate:"required,min=1,max=64"`
	Value   string `json:"value"`
}

type GalleryItemRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

func (r GalleryItemRequest) ToModel() *model.GalleryItem {
	return &model.GalleryItem{
		GalleryItemTitle:     r.Title,
		GalleryItemImageURL:  r.ImageURL,
		GalleryItemSortOrder: r.SortOrder,
	}
}

func (r GalleryItemRequest) Apply(m *model.GalleryItem) {
	m.GalleryItemTitle = r.Title
	m.GalleryItemImageURL = r.ImageURL
	m.GalleryItemSortOrder = r.SortOrder
}

type LegalDocumentRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Slug  string `json:"slug" validate:"required,min=1,max=120"`
	Body  string `json:"body"`
}

func (r LegalDocumentRequest) ToModel() *model.LegalDocument {
	return &model.LegalDocument{
		LegalDocumentTitle: r.Title,
		LegalDocumentSlug:  r.Slug,
		LegalDocumentBody:  r.Body,
	}
}

func (r LegalDocumentRequest) Apply(m *model.LegalDocument) {
	m.LegalDocumentTitle = r.Title
	m.LegalDocumentSlug = r.Slug
	m.LegalDocumentBody = r.Body
}

type TeamMemberRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Role      string `json:"role" validate:"max=120"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

func (r TeamMemberRequest) ToModel() *model.TeamMember {
	return &model.TeamMember{
		TeamMemberName:      r.Name,
		TeamMemberRole:      r.Role,
		TeamMemberPhotoURL:  r.PhotoURL,
		TeamMemberSortOrder: r.SortOrder,
	}
}

func (r TeamMemberRequest) Apply(m *model.TeamMember) {
	m.TeamMemberName = r.Name
	m.TeamMemberRole = r.Role
	m.TeamMemberPhotoURL = r.PhotoURL
	m.TeamMemberSortOrder = r.SortOrder
}
