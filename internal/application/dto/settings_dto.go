package dto

// SettingsResponse ajustes de la tienda (objeto de configuración, no fila en DB).
type SettingsResponse struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Currency  string `json:"currency"`
	TaxRate   string `json:"tax_rate"`
}

// UpdateSettingsRequest actualización parcial de los ajustes en memoria.
type UpdateSettingsRequest struct {
	StoreName *string `json:"store_name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Currency  *string `json:"currency"`
	TaxRate   *string `json:"tax_rate"`
}
