package crmdomain

// Pagination acompanha as listagens paginadas do backend
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// HasNext indica se existem páginas depois de requested, a página pedida ao backend.
// O campo page da resposta é ignorado: nem todo backend o devolve.
func (p Page[T]) HasNext(requested int) bool {
	if p.Pagination.TotalPages > 0 {
		return requested < p.Pagination.TotalPages
	}

	return p.Pagination.Limit > 0 && len(p.Data) >= p.Pagination.Limit
}

// ErrorResponse é o corpo de erro retornado pelo backend
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
