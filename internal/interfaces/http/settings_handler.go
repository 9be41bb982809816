package http

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/pkg/config"
)

// SettingsHandler expone los ajustes de la tienda. Los ajustes son un objeto
// de configuración en memoria sembrado desde el entorno al arrancar; los
// cambios vía PUT duran hasta el próximo reinicio del proceso.
type SettingsHandler struct {
	mu    sync.RWMutex
	store config.StoreConfig
}

func NewSettingsHandler(store config.StoreConfig) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Current devuelve una copia segura de los ajustes vigentes.
func (h *SettingsHandler) Current() config.StoreConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.store
}

// Get godoc
// @Summary      Obtener ajustes de la tienda
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s := h.Current()
	return c.JSON(dto.SettingsResponse{
		StoreName: s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Currency:  s.Currency,
		TaxRate:   s.TaxRate,
	})
}

// Update godoc
// @Summary      Actualizar ajustes de la tienda (en memoria)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TaxRate != nil {
		rate, err := decimal.NewFromString(strings.TrimSpace(*in.TaxRate))
		if err != nil || rate.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_INPUT",
				Message: "tax_rate debe ser un decimal no negativo",
			})
		}
	}

	h.mu.Lock()
	if in.StoreName != nil {
		h.store.Name = strings.TrimSpace(*in.StoreName)
	}
	if in.Address != nil {
		h.store.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		h.store.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Currency != nil {
		h.store.Currency = strings.TrimSpace(*in.Currency)
	}
	if in.TaxRate != nil {
		h.store.TaxRate = strings.TrimSpace(*in.TaxRate)
	}
	h.mu.Unlock()

	return h.Get(c)
}
