package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeUploader struct {
	uploadCalls int
	editCalls   int
	err         error
	lastData    []byte
}

func (u *fakeUploader) UploadPhoto(_ context.Context, filename string, data []byte, _ string) (string, error) {
	u.uploadCalls++
	u.lastData = data
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn/" + filename + ".webp", nil
}

func (u *fakeUploader) UploadEdited(_ context.Context, data []byte, _ string) (string, error) {
	u.editCalls++
	u.lastData = data
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn/edit.webp", nil
}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("\x89PNG\r\n\x1a\n"))
	return data
}

func jpegBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	return data
}

func TestAttachPhotoHappyPath(t *testing.T) {
	up := &fakeUploader{}
	s := NewSession(uuid.New())

	data := jpegBytes(300 * 1024)
	url, err := s.AttachPhoto(context.Background(), up, "escuela.jpg", int64(len(data)), data)
	if err != nil {
		t.Fatalf("AttachPhoto: %v", err)
	}
	if url == "" {
		t.Fatal("URL vacía")
	}
	if up.uploadCalls != 1 {
		t.Fatalf("uploader llamado %d veces", up.uploadCalls)
	}
	if len(s.Form.Media) != 1 || !s.Form.Media[0].IsPrimary {
		t.Fatal("la primera foto debe quedar en la lista y ser primaria")
	}
	if s.UploadInFlight {
		t.Fatal("UploadInFlight debe quedar apagado al terminar")
	}
}

func TestAttachPhotoOversizeRejectedBeforeUpload(t *testing.T) {
	up := &fakeUploader{}
	s := NewSession(uuid.New())

	data := pngBytes(3 * 1024 * 1024) // 3MB
	_, err := s.AttachPhoto(context.Background(), up, "grande.png", int64(len(data)), data)
	if err == nil {
		t.Fatal("3MB debe rechazarse")
	}
	if up.uploadCalls != 0 {
		t.Fatal("un archivo inválido no debe generar tráfico al storage")
	}
	if len(s.Form.Media) != 0 {
		t.Fatal("la lista de media debe quedar intacta")
	}
}

func TestAttachPhotoWrongMIMERejectedBeforeUpload(t *testing.T) {
	up := &fakeUploader{}
	s := NewSession(uuid.New())

	data := make([]byte, 1024)
	copy(data, []byte("GIF89a"))
	_, err := s.AttachPhoto(context.Background(), up, "anim.gif", int64(len(data)), data)
	if err == nil {
		t.Fatal("gif debe rechazarse")
	}
	if up.uploadCalls != 0 {
		t.Fatal("el sniff de MIME corre antes de subir")
	}
}

func TestAttachPhotoUploadFailureLeavesListIntact(t *testing.T) {
	up := &fakeUploader{err: errors.New("red caída")}
	s := NewSession(uuid.New())

	data := jpegBytes(100 * 1024)
	_, err := s.AttachPhoto(context.Background(), up, "foto.jpg", int64(len(data)), data)
	if err == nil {
		t.Fatal("el fallo del uploader debe propagarse")
	}
	if len(s.Form.Media) != 0 {
		t.Fatal("sin URL durable no hay entrada de media")
	}
	if s.UploadInFlight {
		t.Fatal("UploadInFlight debe apagarse también en fallo")
	}
}

func TestEditPhotoReplacesAtIndex(t *testing.T) {
	up := &fakeUploader{}
	s := NewSession(uuid.New())
	s.Form.AddMedia("https://cdn/original.webp", MediaTypeImage)
	s.Form.AddMedia("https://cdn/otra.webp", MediaTypeImage)

	url, err := s.EditPhoto(context.Background(), up, 1, []byte("webp-bytes"))
	if err != nil {
		t.Fatalf("EditPhoto: %v", err)
	}
	if s.Form.Media[1].MediaURL != url {
		t.Fatal("el item 1 debe llevar la URL editada")
	}
	if !s.Form.Media[0].IsPrimary {
		t.Fatal("editar no mueve el flag primario")
	}
	if up.editCalls != 1 {
		t.Fatalf("editCalls = %d", up.editCalls)
	}
}

func TestEditPhotoOutOfRange(t *testing.T) {
	up := &fakeUploader{}
	s := NewSession(uuid.New())
	s.Form.AddMedia("https://cdn/unica.webp", MediaTypeImage)

	for _, idx := range []int{4, 1, -2} {
		if _, err := s.EditPhoto(context.Background(), up, idx, []byte("webp")); err == nil {
			t.Fatalf("idx=%d fuera de rango debe fallar", idx)
		}
	}
	if up.editCalls != 0 {
		t.Fatal("un índice inválido no debe generar tráfico al storage")
	}
	if s.Form.Media[0].MediaURL != "https://cdn/unica.webp" {
		t.Fatal("la lista de media debe quedar intacta")
	}
}
