package engine

import "sort"

// FixedBaseline é a linha de base constante usada quando não há população de
// referência: o dashboard compara cada tema contra 50% de acerto.
const FixedBaseline = 0.50

// GapRecord é um agregado temático pareado com a média de referência e o gap
// assinado em pontos percentuais. Gap positivo = acima da referência.
type GapRecord struct {
	GrandeArea       string  `json:"grande_area"`
	Subespecialidade string  `json:"subespecialidade"`
	Diagnostico      string  `json:"diagnostico,omitempty"`
	Acerto           float64 `json:"acerto"`
	Referencia       float64 `json:"referencia"`
	Gap              float64 `json:"gap"`
}

// Compare calcula os gaps de um agregado institucional. Com ref == nil entra
// o modo de linha de base fixa (0.50 para todo tema); com ref preenchido o
// cruzamento é um inner join na chave completa de agrupamento — tema presente
// em só um dos lados é descartado, não tratado como zero. A ordem de entrada
// é preservada (empates mantêm a ordem de chegada).
func Compare(inst []TopicAggregate, ref []TopicAggregate) []GapRecord {
	var lookup map[groupKey]float64
	if ref != nil {
		lookup = make(map[groupKey]float64, len(ref))
		for _, r := range ref {
			lookup[groupKey{r.GrandeArea, r.Subespecialidade, r.Diagnostico}] = r.Acerto
		}
	}

	gaps := make([]GapRecord, 0, len(inst))
	for _, a := range inst {
		referencia := FixedBaseline
		if lookup != nil {
			v, ok := lookup[groupKey{a.GrandeArea, a.Subespecialidade, a.Diagnostico}]
			if !ok {
				continue
			}
			referencia = v
		}
		gaps = append(gaps, GapRecord{
			GrandeArea:       a.GrandeArea,
			Subespecialidade: a.Subespecialidade,
			Diagnostico:      a.Diagnostico,
			Acerto:           a.Acerto,
			Referencia:       referencia,
			Gap:              (a.Acerto - referencia) * 100,
		})
	}
	return gaps
}

// Strengths devolve até n gaps em ordem decrescente (fortalezas primeiro).
// Ordenação estável: empates preservam a ordem de chegada.
func Strengths(gaps []GapRecord, n int) []GapRecord {
	out := make([]GapRecord, len(gaps))
	copy(out, gaps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gap > out[j].Gap })
	return truncate(out, n)
}

// Attention devolve até n gaps em ordem crescente (pior gap primeiro).
func Attention(gaps []GapRecord, n int) []GapRecord {
	out := make([]GapRecord, len(gaps))
	copy(out, gaps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gap < out[j].Gap })
	return truncate(out, n)
}

func truncate(gaps []GapRecord, n int) []GapRecord {
	if n > 0 && len(gaps) > n {
		return gaps[:n]
	}
	return gaps
}
