package wizard

import (
	"context"
	"fmt"
	"net/http"
)

// MaxPhotoSize: límite duro de 2 MB para fotos de campaña.
const MaxPhotoSize = 2 * 1024 * 1024

// ValidatePhoto corre en local, antes de cualquier tráfico: tamaño declarado
// y MIME real (sniff) deben pasar o el archivo se rechaza sin subir nada.
func ValidatePhoto(filename string, size int64, data []byte) error {
	if size > MaxPhotoSize || int64(len(data)) > MaxPhotoSize {
		return fmt.Errorf("la imagen supera el límite de 2 MB")
	}
	if len(data) == 0 {
		return fmt.Errorf("el archivo está vacío")
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	switch http.DetectContentType(head) {
	case "image/jpeg", "image/png":
		return nil
	default:
		return fmt.Errorf("formato no soportado: usa JPG o PNG")
	}
}

// AttachPhoto: valida, sube y agrega el item de media. Las subidas no se
// paralelizan: cada archivo se espera antes de permitir otra transición.
// En fallo la lista de media queda intacta (sin entradas parciales).
func (s *Session) AttachPhoto(ctx context.Context, up Uploader, filename string, size int64, data []byte) (string, error) {
	if err := ValidatePhoto(filename, size, data); err != nil {
		return "", err
	}
	s.UploadInFlight = true
	defer func() { s.UploadInFlight = false }()

	url, err := up.UploadPhoto(ctx, filename, data, s.ID.String())
	if err != nil {
		return "", err
	}
	s.Form.AddMedia(url, MediaTypeImage)
	return url, nil
}

// EditPhoto: sube el resultado re-codificado del recorte y reemplaza la
// entrada en idx (o agrega una nueva con idx == -1). La regla "el primer
// item es primario por defecto" se conserva en ambos casos.
func (s *Session) EditPhoto(ctx context.Context, up Uploader, idx int, edited []byte) (string, error) {
	if len(edited) == 0 {
		return "", fmt.Errorf("la imagen editada está vacía")
	}
	if int64(len(edited)) > MaxPhotoSize {
		return "", fmt.Errorf("la imagen supera el límite de 2 MB")
	}
	// el índice se revisa antes de subir: un idx roto no debe dejar un
	// objeto huérfano en el storage
	if idx < -1 || idx >= len(s.Form.Media) {
		return "", fmt.Errorf("índice de media fuera de rango: %d", idx)
	}
	s.UploadInFlight = true
	defer func() { s.UploadInFlight = false }()

	url, err := up.UploadEdited(ctx, edited, s.ID.String())
	if err != nil {
		return "", err
	}
	if idx >= 0 {
		if err := s.Form.ReplaceMediaAt(idx, url); err != nil {
			return "", err
		}
	} else {
		s.Form.AddMedia(url, MediaTypeImage)
	}
	return url, nil
}
