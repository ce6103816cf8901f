package model

// Locality é o mapeamento de localização de um curso/IES
// (mapeamento_localidade.csv), usado nos filtros regionais e no ranking.
// swagger:model Locality
type Locality struct {
	CoCurso     int    `gorm:"primaryKey" json:"co_curso"`
	IesEstado   string `gorm:"size:100" json:"ies_estado"`
	IesMunic    string `gorm:"size:150" json:"ies_munic"`
	SiglaEstado string `gorm:"size:2;index" json:"sigla_estado"`
}

func (Locality) TableName() string {
	return "localidades"
}
