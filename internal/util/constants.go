package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Nomes dos datasets aceitos pela importação
const (
	DatasetAlunos      = "alunos"
	DatasetGabaritos   = "gabaritos"
	DatasetMapeamento  = "mapeamento"
	DatasetLocalidades = "localidades"
)
