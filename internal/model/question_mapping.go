package model

// QuestionMapping liga uma questão de um caderno à sua classificação
// temática (base_mapeamento.csv): grande área, subespecialidade e o rótulo
// diagnóstico em texto livre. Deve existir exatamente uma linha por
// (co_caderno, nu_questao); questões sem mapeamento ficam fora dos agregados.
// swagger:model QuestionMapping
type QuestionMapping struct {
	BaseModel
	CoCaderno        int    `gorm:"index:idx_caderno_questao" json:"co_caderno"`
	NuQuestao        int    `gorm:"index:idx_caderno_questao" json:"nu_questao"`
	GrandeArea       string `gorm:"size:100" json:"grande_area"`
	Subespecialidade string `gorm:"size:150" json:"subespecialidade"`
	Diagnostico      string `gorm:"size:255" json:"diagnostico"`
}

func (QuestionMapping) TableName() string {
	return "questao_mapeamentos"
}
