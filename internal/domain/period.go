package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ViewMode string

const (
	ViewModeMonth ViewMode = "month"
	ViewModeYear  ViewMode = "year"
)

var ErrInvalidViewMode = errors.New("modo de visualização inválido")

// ParseViewMode converte o parâmetro de consulta no modo de visualização. Vazio equivale a mensal.
func ParseViewMode(value string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ViewModeMonth:
		return ViewModeMonth, nil
	case ViewModeYear:
		return ViewModeYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, value)
	}
}

// Period identifica um balde do relatório. Month é zero no modo anual.
type Period struct {
	Year  int
	Month time.Month
}

// Key retorna o rótulo exibido: "Mar '24" no modo mensal e "2024" no anual
func (p Period) Key() string {
	if p.Month == 0 {
		return fmt.Sprintf("%04d", p.Year)
	}

	return fmt.Sprintf("%s '%02d", p.Month.String()[:3], p.Year%100)
}

// Before compara em ordem de calendário
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func (p Period) String() string {
	return p.Key()
}
