package helper

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
)

// EditSpec: recorte + ajustes básicos aplicados en el flujo de edición de una
// foto ya subida. Las coordenadas son en píxeles sobre la imagen original.
type EditSpec struct {
	CropX      int     `json:"crop_x"`
	CropY      int     `json:"crop_y"`
	CropWidth  int     `json:"crop_width"`
	CropHeight int     `json:"crop_height"`
	Rotate     float64 `json:"rotate"`     // grados, antihorario
	Brightness float64 `json:"brightness"` // -100..100
	Contrast   float64 `json:"contrast"`   // -100..100
}

// ApplyPhotoEdit: decodifica, aplica recorte/ajustes y devuelve webp listo para
// subir. Datos malformados no tumban el asistente: se loguea y se devuelve un
// placeholder vacío.
func ApplyPhotoEdit(original []byte, spec EditSpec) ([]byte, error) {
	img, err := DecodeImageBytes(original)
	if err != nil {
		log.Printf("[ERROR] imagen editada malformada: %v", err)
		return placeholderWebP()
	}

	if spec.CropWidth > 0 && spec.CropHeight > 0 {
		rect := image.Rect(spec.CropX, spec.CropY, spec.CropX+spec.CropWidth, spec.CropY+spec.CropHeight)
		rect = rect.Intersect(img.Bounds())
		if rect.Empty() {
			return nil, fmt.Errorf("el recorte queda fuera de la imagen")
		}
		img = imaging.Crop(img, rect)
	}
	if spec.Rotate != 0 {
		img = imaging.Rotate(img, spec.Rotate, color.Transparent)
	}
	if spec.Brightness != 0 {
		img = imaging.AdjustBrightness(img, spec.Brightness)
	}
	if spec.Contrast != 0 {
		img = imaging.AdjustContrast(img, spec.Contrast)
	}

	return EncodeWebP(img)
}

// placeholderWebP: imagen gris de 1x1 para degradar sin romper el flujo.
func placeholderWebP() ([]byte, error) {
	return EncodeWebP(imaging.New(1, 1, color.Gray{Y: 0xee}))
}
