package service

import (
	"context"

	helperOSS "donavida_backend/internals/helpers/oss"
)

// OSSUploader adapta el cliente OSS al puerto Uploader del asistente. Toda
// la validación local ya ocurrió cuando estos métodos reciben los bytes.
type OSSUploader struct {
	Svc *helperOSS.OSSService
}

func NewOSSUploaderFromEnv() (*OSSUploader, error) {
	svc, err := helperOSS.NewOSSServiceFromEnv("donavida")
	if err != nil {
		return nil, err
	}
	return &OSSUploader{Svc: svc}, nil
}

func (u *OSSUploader) UploadPhoto(ctx context.Context, filename string, data []byte, sessionKey string) (string, error) {
	return u.Svc.UploadPhotoBytes(ctx, filename, data, sessionKey)
}

func (u *OSSUploader) UploadEdited(ctx context.Context, data []byte, sessionKey string) (string, error) {
	return u.Svc.UploadEditedPhoto(ctx, data, sessionKey)
}
