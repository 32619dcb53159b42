package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Konten situs publik: pasangan (section,key) untuk teks halaman,
   plus galeri, dokumen legal, dan anggota tim.
   ========================================================= */

type CmsContent struct {
	CmsContentID      uuid.UUID `json:"cms_content_id" gorm:"column:cms_content_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CmsContentSection string    `json:"cms_content_section" gorm:"column:cms_content_section;not null;uniqueIndex:uq_cms_section_key"`
	CmsContentKey     string    `json:"cms_content_key" gorm:"column:cms_content_key;not null;uniqueIndex:uq_cms_section_key"`
	CmsContentValue   string    `json:"cms_content_value" gorm:"column:cms_content_value;type:text"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CmsContent) TableName() string {
	return "cms_contents"
}

type GalleryItem struct {
	GalleryItemID        uuid.UUID `json:"gallery_item_id" gorm:"column:gallery_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GalleryItemTitle     string    `json:"gallery_item_title" gorm:"column:gallery_item_title;not null"`
	GalleryItemImageURL  string    `json:"gallery_item_image_url" gorm:"column:gallery_item_image_url;not null"`
	GalleryItemSortOrder int       `json:"gallery_item_sort_order" gorm:"column:gallery_item_sort_order;not null;default:0"`
	CreatedAt            time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}

type LegalDocument struct {
	LegalDocumentID    uuid.UUID `json:"legal_document_id" gorm:"column:legal_document_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LegalDocumentTitle string    `json:"legal_document_title" gorm:"column:legal_document_title;not null"`
	LegalDocumentSlug  string    `json:"legal_document_slug" gorm:"column:legal_document_slug;not null;uniqueIndex"`
	LegalDocumentBody  string    `json:"legal_document_body" gorm:"column:legal_document_body;type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (LegalDocument) TableName() string {
	return "legal_documents"
}

type TeamMember struct {
	TeamMemberID        uuid.UUID `json:"team_member_id" gorm:"column:team_member_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TeamMemberName      string    `json:"team_member_name" gorm:"column:team_member_name;not null"`
	TeamMemberRole      string    `json:"team_member_role" gorm:"column:team_member_role"`
	TeamMemberPhotoURL  string    `json:"team_member_photo_url" gorm:"column:team_member_photo_url"`
	TeamMemberSortOrder int       `json:"team_member_sort_order" gorm:"column:team_member_sort_order;not null;default:0"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
