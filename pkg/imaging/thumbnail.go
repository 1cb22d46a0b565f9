// Package imaging contiene la transformación pura de imágenes usada en el
// registro de un negocio: reducir el logo a un ancho fijo antes de enviarlo.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // registrar decoders de los formatos de logo aceptados
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Downsample escala una imagen al ancho indicado manteniendo la proporción y
// la codifica como JPEG comprimido dentro de un data URI. El resultado es
// determinista para una misma entrada: (imagen, maxWidth, quality) → thumbnail.
func Downsample(data []byte, maxWidth, quality int) (string, error) {
	if maxWidth <= 0 {
		return "", fmt.Errorf("imaging: maxWidth debe ser positivo")
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("imaging: decodificar logo: %w", err)
	}

	b := src.Bounds()
	scale := float64(maxWidth) / float64(b.Dx())
	height := int(float64(b.Dy())*scale + 0.5)
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("imaging: codificar thumbnail: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
