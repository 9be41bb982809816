// Package storage guarda en disco las imágenes de producto y devuelve la URL
// pública con la que se sirven (prefijo MEDIA_BASE_URL).
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions extensiones de imagen aceptadas.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// LocalImageStore almacena imágenes bajo un directorio local.
type LocalImageStore struct {
	dir     string
	baseURL string
}

// NewLocalImageStore construye el almacén asegurando que el directorio exista.
func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "product_images"), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de media: %w", err)
	}
	return &LocalImageStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// SaveProductImage guarda el contenido con un nombre product_<uuid><ext> y
// devuelve la URL pública. El nombre original solo aporta la extensión.
func (s *LocalImageStore) SaveProductImage(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("extensión no permitida: %q", ext)
	}
	filename := "product_" + strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	dst := filepath.Join(s.dir, "product_images", filename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return s.baseURL + path.Join("/product_images", filename), nil
}

// Dir devuelve el directorio raíz del almacén (para montar el file server).
func (s *LocalImageStore) Dir() string { return s.dir }
