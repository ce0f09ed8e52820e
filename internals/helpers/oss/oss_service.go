// internals/helpers/oss/oss_service.go
package oss

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xwebp "golang.org/x/image/webp"
)

// Guard ringan untuk ukuran upload di controller.
const MaxUploadSize = int64(5 * 1024 * 1024)

type OSSService struct {
	Bucket    *alioss.Bucket
	BaseURL   string // public URL prefix, mis. https://bucket.oss-ap-southeast-5.aliyuncs.com
	KeyPrefix string // folder dasar, mis. "schoolku"
}

// NewOSSServiceFromEnv membuat service dari OSS_ENDPOINT / OSS_ACCESS_KEY_ID /
// OSS_ACCESS_KEY_SECRET / OSS_BUCKET.
func NewOSSServiceFromEnv(keyPrefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: ENV OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET belum lengkap")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return &OSSService{
		Bucket:    bucket,
		BaseURL:   fmt.Sprintf("https://%s.%s", bucketName, host),
		KeyPrefix: strings.Trim(keyPrefix, "/"),
	}, nil
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = xwebp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = xwebp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s", ct)
		}
	}
	return img, err
}

// ConvertToWebP: decode → downscale (max 1600px, keep aspect) → encode webp q80.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	all, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(all)) > MaxUploadSize {
		return nil, fmt.Errorf("file terlalu besar (maks %d MB)", MaxUploadSize/(1024*1024))
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > 1600 || b.Dy() > 1600 {
		img = imaging.Fit(img, 1600, 1600, imaging.CatmullRom)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   Upload / delete / URL
======================================================================= */

// UploadAsWebP mengkonversi form-file jadi webp lalu upload; return public URL.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := ConvertToWebP(f, fh.Filename)
	if err != nil {
		return "", err
	}

	key := s.buildKey(folder, "webp")
	if err := s.Bucket.PutObject(key, bytes.NewReader(data),
		alioss.ContentType("image/webp"),
		alioss.CacheControl("public, max-age=31536000, immutable"),
	); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// UploadRaw mengunggah file apa adanya (pdf, dsb); return public URL.
func (s *OSSService) UploadRaw(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	if ext == "" {
		ext = "bin"
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	key := s.buildKey(folder, ext)
	if err := s.Bucket.PutObject(key, f, alioss.ContentType(ct)); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}

func (s *OSSService) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

// ExtractKeyFromPublicURL: kebalikan PublicURL, untuk delete by URL.
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("oss: URL tanpa object key")
	}
	return key, nil
}

func (s *OSSService) buildKey(folder, ext string) string {
	var rnd [8]byte
	_, _ = rand.Read(rnd[:])
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixNano(), hex.EncodeToString(rnd[:]), ext)
	parts := []string{}
	if s.KeyPrefix != "" {
		parts = append(parts, s.KeyPrefix)
	}
	if folder = strings.Trim(folder, "/"); folder != "" {
		parts = append(parts, folder)
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}
