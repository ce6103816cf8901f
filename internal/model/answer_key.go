package model

// AnswerKey é o gabarito oficial de um caderno de prova (base_gabarito.csv).
// Respostas é o vetor DS_VT_GAB_OBJ em largura fixa: um símbolo por questão,
// 'A'..'E' ou um dos marcadores de anulação ('X', 'Z', '*').
// swagger:model AnswerKey
type AnswerKey struct {
	BaseModel
	CoCaderno int    `gorm:"uniqueIndex" json:"co_caderno"`
	Respostas string `gorm:"size:100" json:"respostas"`
}

func (AnswerKey) TableName() string {
	return "gabaritos"
}
