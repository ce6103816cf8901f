package util

import (
	"math"
	"strconv"
	"strings"
)

// Round2 arredonda para duas casas decimais, o formato de todos os
// percentuais expostos pela API.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// SafeInt converte um campo de microdados para inteiro, tolerando vazio,
// espaços e notação decimal ("1234.0"); falha de parse resulta em 0.
func SafeInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// CleanUpper normaliza campos textuais de filtro: trim + caixa alta.
func CleanUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
