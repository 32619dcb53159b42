package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"eduadmin_backend/internals/configs"
)

/*
BlobService adalah facade upload yang seragam untuk controller.

  - UploadImage: re-encode ke WebP (foto siswa, galeri, background template)
  - UploadAny: image → WebP, non-image → raw (dokumen identitas, file Excel contoh)

Implementasi: Aliyun OSS bila ENV lengkap, fallback disk lokal (dev / self-host).
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	UploadAny(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
}

// NewBlobServiceFromEnv pilih backend sesuai konfigurasi.
func NewBlobServiceFromEnv() BlobService {
	if svc, err := NewOSSServiceFromEnv("uploads"); err == nil {
		return &ossBlobService{svc: svc}
	}
	return NewLocalBlobService()
}

// NewLocalBlobService selalu menulis ke disk, dipakai endpoint local-upload.
func NewLocalBlobService() BlobService {
	return &localBlobService{baseDir: configs.UploadDir, baseURL: configs.BaseURL}
}

/* =======================================================================
   Nama file unik
======================================================================= */

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(dir, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", strings.Trim(dir, "/"), timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func replaceExt(key, newExt string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + newExt
}

/* =======================================================================
   OSS backend
======================================================================= */

type ossBlobService struct {
	svc *OSSService
}

func (b *ossBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}
	key := replaceExt(GenerateUniqueFilename(dir, fh.Filename), ".webp")
	if err := b.svc.UploadStream(ctx, key, bytes.NewReader(data), "image/webp"); err != nil {
		return "", fmt.Errorf("oss upload: %w", err)
	}
	return b.svc.PublicURL(key), nil
}

func (b *ossBlobService) UploadAny(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if IsImageContentType(fh) {
		return b.UploadImage(ctx, dir, fh)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := GenerateUniqueFilename(dir, fh.Filename)
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	if err := b.svc.UploadStream(ctx, key, src, ct); err != nil {
		return "", fmt.Errorf("oss upload: %w", err)
	}
	return b.svc.PublicURL(key), nil
}

/* =======================================================================
   Local disk backend
======================================================================= */

type localBlobService struct {
	baseDir string
	baseURL string
}

func (b *localBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}
	key := replaceExt(GenerateUniqueFilename(dir, fh.Filename), ".webp")
	return b.writeFile(key, bytes.NewReader(data))
}

func (b *localBlobService) UploadAny(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if IsImageContentType(fh) {
		return b.UploadImage(ctx, dir, fh)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return b.writeFile(GenerateUniqueFilename(dir, fh.Filename), src)
}

func (b *localBlobService) writeFile(key string, r io.Reader) (string, error) {
	full := filepath.Join(b.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}
	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return fmt.Sprintf("%s/uploads/%s", strings.TrimRight(b.baseURL, "/"), key), nil
}
