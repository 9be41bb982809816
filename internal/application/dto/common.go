package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Fields lleva mensajes por campo en
// errores de validación; Role y Permissions acompañan los 403 para que el
// cliente pueda mostrar qué puede hacer el usuario.
type ErrorResponse struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Fields      map[string]string `json:"fields,omitempty"`
	Role        string            `json:"role,omitempty"`
	Permissions []string          `json:"permissions,omitempty"`
}
