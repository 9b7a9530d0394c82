package crmdomain

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Timestamp aceita qualquer valor JSON nos campos de data do backend. Present indica que o
// campo veio preenchido; Time fica nil quando o valor não é uma data reconhecida.
type Timestamp struct {
	Time    *time.Time
	Present bool
}

// NewTimestamp monta o valor como se o backend tivesse enviado a string informada
func NewTimestamp(value string) Timestamp {
	value = strings.TrimSpace(value)
	if value == "" || value == "null" {
		return Timestamp{}
	}
	return Timestamp{Time: ParseTimestamp(value), Present: true}
}

// UnmarshalJSON nunca falha: um valor malformado afeta só o registro, não a página inteira.
// Números são lidos como epoch em milissegundos.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = Timestamp{}

	switch {
	case len(data) == 0, string(data) == "null", string(data) == "false":
		return nil
	case data[0] == '"':
		var value string
		if err := jsoniter.Unmarshal(data, &value); err != nil {
			t.Present = true
			return nil
		}
		*t = NewTimestamp(value)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		t.Present = true
		if millis, err := strconv.ParseFloat(string(data), 64); err == nil {
			parsed := time.UnixMilli(int64(millis)).UTC()
			t.Time = &parsed
		}
	default:
		t.Present = true
	}

	return nil
}

// ParseTimestamp converte as datas do backend. Valores vazios ou inválidos retornam nil:
// o registro é mantido e fica de fora do agrupamento por período.
func ParseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || value == "null" {
		return nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}
