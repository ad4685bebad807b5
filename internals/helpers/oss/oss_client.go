package helper

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
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   Límites para fotos de campaña
======================================================================= */

// MaxCampaignPhotoSize: límite duro para fotos de campaña (se valida antes
// de tocar la red).
const MaxCampaignPhotoSize = 2 * 1024 * 1024

var allowedPhotoMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// ValidateCampaignPhoto: tamaño ≤ 2MB y MIME jpeg/png. Corre completo en
// local; un archivo inválido nunca genera una llamada al storage.
func ValidateCampaignPhoto(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("no se recibió ningún archivo")
	}
	if fh.Size > MaxCampaignPhotoSize {
		return fmt.Errorf("la imagen supera el límite de 2 MB (%d KB)", fh.Size/1024)
	}
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(io.LimitReader(src, 512), head)
	ct := http.DetectContentType(head[:n])
	if _, ok := allowedPhotoMIME[ct]; !ok {
		return fmt.Errorf("formato no soportado (%s): usa JPG o PNG", ct)
	}
	return nil
}

/* =======================================================================
   Conversión a WebP (decode → downscale → encode)
======================================================================= */

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}
	// fallback por extensión
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("formato no soportado: %s", ct)
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP: lee → decodifica → reescala si hace falta → codifica webp.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	opts := defaultWebPOptionsFromEnv()
	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: opts.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeWebP: codifica una imagen ya en memoria (flujo de recorte/edición).
func EncodeWebP(img image.Image) ([]byte, error) {
	opts := defaultWebPOptionsFromEnv()
	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: opts.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeImageBytes(all []byte) (image.Image, error) {
	return decodeImage(all, "")
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadCampaignPhoto: valida, convierte a webp y sube. Devuelve la URL pública.
func (s *OSSService) UploadCampaignPhoto(ctx context.Context, fh *multipart.FileHeader, campaignKey string) (string, error) {
	if err := ValidateCampaignPhoto(fh); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey("campaigns/"+safePart(campaignKey), base+".webp")
	return s.putWebP(ctx, key, webpData)
}

// UploadPhotoBytes: como UploadCampaignPhoto pero con los bytes ya en
// memoria (el asistente los valida antes de llamar acá).
func (s *OSSService) UploadPhotoBytes(ctx context.Context, filename string, data []byte, campaignKey string) (string, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return "", err
	}
	webpData, err := EncodeWebP(img)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "foto"
	}
	key := s.buildObjectKey("campaigns/"+safePart(campaignKey), base+".webp")
	return s.putWebP(ctx, key, webpData)
}

// UploadEditedPhoto: sube bytes webp ya codificados (resultado del recorte).
func (s *OSSService) UploadEditedPhoto(ctx context.Context, data []byte, campaignKey string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}
	key := s.buildObjectKey("campaigns/"+safePart(campaignKey), "edit.webp")
	return s.putWebP(ctx, key, data)
}

func (s *OSSService) putWebP(ctx context.Context, key string, data []byte) (string, error) {
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

// DeleteByPublicURLENV: borrado best-effort sin servicio preconstruido.
func DeleteByPublicURLENV(publicURL string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		log.Printf("[WARN] no se pudo borrar objeto OSS %s: %v", publicURL, err)
		return err
	}
	return nil
}

/* =======================================================================
   Public URL & Key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

func (s *OSSService) buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")

	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	dir = strings.Trim(dir, "/")
	if dir != "" {
		prefix += dir + "/"
	}
	return fmt.Sprintf("%s%s_%s_%s%s", prefix, slugify(base), ts, randHex(3), ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func safePart(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return "unknown"
	}
	return slugify(s)
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
