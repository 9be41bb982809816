package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	"github.com/tu-usuario/pos-pro/internal/infrastructure/storage"
)

// maxImageSize límite de tamaño por imagen subida (5 MB).
const maxImageSize = 5 << 20

// UploadHandler sube imágenes de producto al almacén local y asocia la URL
// resultante al producto.
type UploadHandler struct {
	store     *storage.LocalImageStore
	productUC *usecase.ProductUseCase
}

func NewUploadHandler(store *storage.LocalImageStore, productUC *usecase.ProductUseCase) *UploadHandler {
	return &UploadHandler{store: store, productUC: productUC}
}

// UploadProductImage godoc
// @Summary      Subir imagen de un producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID del producto"
// @Param        image  formData  file    true  "Archivo de imagen (jpg, png, webp, gif)"
// @Success      200    {object}  dto.UploadImageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/products/{id}/image [post]
func (h *UploadHandler) UploadProductImage(c *fiber.Ctx) error {
	// El producto debe existir antes de tocar el disco: así no quedan
	// archivos huérfanos en el directorio de media.
	product, err := h.productUC.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo image"})
	}
	if fileHeader.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la imagen supera el tamaño máximo de 5 MB"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	url, err := h.store.SaveProductImage(fileHeader.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}

	if _, err := h.productUC.Update(c.Params("id"), dto.UpdateProductRequest{ImageURL: &url}); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.UploadImageResponse{URL: url})
}
