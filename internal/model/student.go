package model

// NumQuestoes é o comprimento fixo do vetor de respostas: toda prova objetiva
// tem exatamente 100 posições, indexadas por nu_questao de 1 a 100.
const NumQuestoes = 100

// SemResposta é o símbolo usado para preencher posições não respondidas.
const SemResposta = ' '

// Student é um registro de participante dos microdados (base_alunos.csv).
// Respostas guarda o vetor DS_VT_ESC_OBJ já concatenado em largura fixa:
// o caractere na posição i corresponde à questão i+1 do caderno CoCaderno.
// swagger:model Student
type Student struct {
	BaseModel
	NuAno     int    `gorm:"index" json:"nu_ano"`
	CoCurso   int    `gorm:"index" json:"co_curso"`
	CoCaderno int    `gorm:"index" json:"co_caderno"`
	IesNome   string `gorm:"size:255" json:"ies_nome"`
	P360      string `gorm:"size:5" json:"p360"`
	EnamedIes string `gorm:"size:5" json:"enamed_ies"`
	Respostas string `gorm:"size:100" json:"-"`
}

func (Student) TableName() string {
	return "alunos"
}

// NormalizeAnswers força uma sequência de respostas à largura fixa de 100
// posições: corta o excedente e completa com o símbolo de "sem resposta".
// A invariante posicional do cruzamento com o gabarito depende disso ser
// aplicado na ingestão, não espalhado pela pontuação.
func NormalizeAnswers(raw string) string {
	if len(raw) >= NumQuestoes {
		return raw[:NumQuestoes]
	}
	buf := make([]byte, NumQuestoes)
	copy(buf, raw)
	for i := len(raw); i < NumQuestoes; i++ {
		buf[i] = SemResposta
	}
	return string(buf)
}
