// Package funnel calcula as métricas do funil de prospecção de um projeto a partir
// das atividades e contatos já carregados em memória. Todas as funções são puras.
package funnel

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

const monthKeyLayout = "Jan '06"

type options struct {
	location *time.Location
}

type Option func(*options)

// WithLocation define o fuso usado para decidir o período de cada data (padrão UTC)
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

func newOptions(opts []Option) options {
	o := options{location: time.UTC}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PeriodOf retorna o período de uma data no modo de visualização informado
func PeriodOf(t time.Time, mode domain.ViewMode, loc *time.Location) domain.Period {
	if loc != nil {
		t = t.In(loc)
	}

	if mode == domain.ViewModeYear {
		return domain.Period{Year: t.Year()}
	}

	return domain.Period{Year: t.Year(), Month: t.Month()}
}

// CollectPeriods retorna os períodos distintos de atividades e contatos, em ordem de calendário.
// Registros sem data são ignorados.
func CollectPeriods(activities []*domain.Activity, contacts []*domain.Contact, mode domain.ViewMode, loc *time.Location) []domain.Period {
	seen := make(map[domain.Period]struct{})

	for _, activity := range activities {
		if activity == nil || !hasTime(activity.CreatedAt) {
			continue
		}
		seen[PeriodOf(*activity.CreatedAt, mode, loc)] = struct{}{}
	}

	for _, contact := range contacts {
		if contact == nil || !hasTime(contact.CreatedAt) {
			continue
		}
		seen[PeriodOf(*contact.CreatedAt, mode, loc)] = struct{}{}
	}

	periods := make([]domain.Period, 0, len(seen))
	for period := range seen {
		periods = append(periods, period)
	}

	SortPeriods(periods)

	return periods
}

// SortPeriods ordena por (ano, mês). Nunca ordenar pelos rótulos: "Dec '23" > "Jan '24" como string.
func SortPeriods(periods []domain.Period) {
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})
}

// Keys converte os períodos nos rótulos exibidos, preservando a ordem
func Keys(periods []domain.Period) []string {
	keys := make([]string, 0, len(periods))
	for _, period := range periods {
		keys = append(keys, period.Key())
	}
	return keys
}

// ParsePeriodKey faz o caminho inverso de Period.Key
func ParsePeriodKey(key string, mode domain.ViewMode) (domain.Period, error) {
	if mode == domain.ViewModeYear {
		if len(key) != 4 {
			return domain.Period{}, fmt.Errorf("período anual inválido: %q", key)
		}

		year, err := strconv.Atoi(key)
		if err != nil {
			return domain.Period{}, fmt.Errorf("período anual inválido: %q", key)
		}

		return domain.Period{Year: year}, nil
	}

	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return domain.Period{}, fmt.Errorf("período mensal inválido: %q", key)
	}

	return domain.Period{Year: t.Year(), Month: t.Month()}, nil
}

func hasTime(t *time.Time) bool {
	return t != nil && !t.IsZero()
}
