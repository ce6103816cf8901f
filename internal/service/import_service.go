package service

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"p360_analytics_backend/internal/config"
	"p360_analytics_backend/internal/model"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
)

// ImportService ingere os quatro conjuntos de microdados (alunos, gabaritos,
// mapeamento de questões e localidades). Os arquivos seguem o layout do INEP:
// separador ';', codificação Latin-1 e colunas vetoriais DS_VT_*.n de 1 a 100.
type ImportService struct {
	StudentRepo  *repository.StudentRepository
	KeyRepo      *repository.AnswerKeyRepository
	MappingRepo  *repository.MappingRepository
	LocalityRepo *repository.LocalityRepository
	Context      *ExamContextService
	Config       *config.Config
	Logger       *zap.Logger
}

func NewImportService(
	studentRepo *repository.StudentRepository,
	keyRepo *repository.AnswerKeyRepository,
	mappingRepo *repository.MappingRepository,
	localityRepo *repository.LocalityRepository,
	examContext *ExamContextService,
	cfg *config.Config,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		StudentRepo:  studentRepo,
		KeyRepo:      keyRepo,
		MappingRepo:  mappingRepo,
		LocalityRepo: localityRepo,
		Context:      examContext,
		Config:       cfg,
		Logger:       logger,
	}
}

// ImportDataset substitui por completo o conjunto informado a partir de um
// arquivo CSV. Depois de trocar gabaritos ou mapeamento, recarrega o contexto
// de prova para invalidar os índices e a referência nacional.
func (s *ImportService) ImportDataset(ctx context.Context, dataset string, r io.Reader) (int, error) {
	table, err := readCSV(r)
	if err != nil {
		return 0, err
	}

	var n int
	switch dataset {
	case util.DatasetAlunos:
		n, err = s.importAlunos(table)
	case util.DatasetGabaritos:
		n, err = s.importGabaritos(table)
	case util.DatasetMapeamento:
		n, err = s.importMapeamento(table)
	case util.DatasetLocalidades:
		n, err = s.importLocalidades(table)
	default:
		return 0, util.ErrUnknownDataset
	}
	if err != nil {
		return 0, err
	}
	s.Logger.Info("importação concluída",
		zap.String("dataset", dataset),
		zap.Int("registros", n))

	if dataset == util.DatasetGabaritos || dataset == util.DatasetMapeamento {
		if err := s.Context.Reload(ctx); err != nil {
			return n, err
		}
	}
	return n, nil
}

// ImportAll importa os quatro conjuntos a partir do diretório de dados
// configurado. Arquivos ausentes são ignorados com aviso.
func (s *ImportService) ImportAll(ctx context.Context) error {
	files := []struct {
		dataset string
		name    string
	}{
		{util.DatasetLocalidades, "mapeamento_localidade.csv"},
		{util.DatasetMapeamento, "base_mapeamento.csv"},
		{util.DatasetGabaritos, "base_gabarito.csv"},
		{util.DatasetAlunos, "base_alunos.csv"},
	}
	for _, f := range files {
		path := filepath.Join(s.Config.Import.DataDir, f.name)
		file, err := os.Open(path)
		if err != nil {
			s.Logger.Warn("arquivo de microdados ausente", zap.String("path", path))
			continue
		}
		_, err = s.ImportDataset(ctx, f.dataset, file)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) importAlunos(t *csvTable) (int, error) {
	if err := s.StudentRepo.DeleteAll(); err != nil {
		return 0, err
	}

	batchSize := s.Config.Import.BatchSize
	students := make([]model.Student, 0, len(t.rows))
	for _, row := range t.rows {
		if t.get(row, "NU_ANO") == "" {
			continue
		}
		respostas := make([]byte, 0, model.NumQuestoes)
		for n := 1; n <= model.NumQuestoes; n++ {
			respostas = append(respostas, firstByte(t.getN(row, "DS_VT_ESC_OBJ", n), model.SemResposta))
		}
		students = append(students, model.Student{
			NuAno:     util.SafeInt(t.get(row, "NU_ANO")),
			CoCurso:   util.SafeInt(t.get(row, "CO_CURSO")),
			CoCaderno: util.SafeInt(t.get(row, "CO_CADERNO")),
			IesNome:   defaultStr(strings.TrimSpace(t.get(row, "IES_NOME")), "Desconhecido"),
			P360:      defaultStr(strings.TrimSpace(t.get(row, "P360")), "N"),
			EnamedIes: defaultStr(strings.TrimSpace(t.get(row, "ENAMED_IES")), "N"),
			Respostas: model.NormalizeAnswers(string(respostas)),
		})
	}
	if err := s.StudentRepo.CreateBatch(students, batchSize); err != nil {
		return 0, err
	}
	return len(students), nil
}

func (s *ImportService) importGabaritos(t *csvTable) (int, error) {
	if err := s.KeyRepo.DeleteAll(); err != nil {
		return 0, err
	}

	keys := make([]model.AnswerKey, 0, len(t.rows))
	for _, row := range t.rows {
		gabarito := make([]byte, 0, model.NumQuestoes)
		for n := 1; n <= model.NumQuestoes; n++ {
			gabarito = append(gabarito, firstByte(t.getN(row, "DS_VT_GAB_OBJ", n), 'X'))
		}
		keys = append(keys, model.AnswerKey{
			CoCaderno: util.SafeInt(t.get(row, "CO_CADERNO")),
			Respostas: string(gabarito),
		})
	}
	if err := s.KeyRepo.CreateBatch(keys, s.Config.Import.BatchSize); err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (s *ImportService) importMapeamento(t *csvTable) (int, error) {
	if err := s.MappingRepo.DeleteAll(); err != nil {
		return 0, err
	}

	mappings := make([]model.QuestionMapping, 0, len(t.rows))
	for _, row := range t.rows {
		if t.get(row, "CO_CADERNO") == "" || t.get(row, "NU_QUESTAO") == "" {
			continue
		}
		mappings = append(mappings, model.QuestionMapping{
			CoCaderno:        util.SafeInt(t.get(row, "CO_CADERNO")),
			NuQuestao:        util.SafeInt(t.get(row, "NU_QUESTAO")),
			GrandeArea:       strings.TrimSpace(t.get(row, "GRANDE_AREA")),
			Subespecialidade: strings.TrimSpace(t.get(row, "SUBESPECIALIDADE")),
			Diagnostico:      strings.TrimSpace(diagnosticoColumn(t, row)),
		})
	}
	if err := s.MappingRepo.CreateBatch(mappings, s.Config.Import.BatchSize); err != nil {
		return 0, err
	}
	return len(mappings), nil
}

func (s *ImportService) importLocalidades(t *csvTable) (int, error) {
	if err := s.LocalityRepo.DeleteAll(); err != nil {
		return 0, err
	}

	locs := make([]model.Locality, 0, len(t.rows))
	for _, row := range t.rows {
		if t.get(row, "CO_CURSO") == "" || t.get(row, "IES_ESTADO") == "" {
			continue
		}
		locs = append(locs, model.Locality{
			CoCurso:     util.SafeInt(t.get(row, "CO_CURSO")),
			IesEstado:   strings.TrimSpace(t.get(row, "IES_ESTADO")),
			IesMunic:    util.CleanUpper(t.get(row, "IES_MUNIC")),
			SiglaEstado: util.CleanUpper(t.get(row, "SIGLA_ESTADO")),
		})
	}
	if err := s.LocalityRepo.CreateBatch(locs, s.Config.Import.BatchSize); err != nil {
		return 0, err
	}
	return len(locs), nil
}

// diagnosticoColumn lê o rótulo diagnóstico tolerando as duas grafias de
// cabeçalho vistas nas planilhas de mapeamento. A versão acentuada vira
// "DIAGNSTICO" depois da normalização ASCII do cabeçalho.
func diagnosticoColumn(t *csvTable, row []string) string {
	if v := t.get(row, "DIAGNOSTICO"); v != "" {
		return v
	}
	return t.get(row, "DIAGNSTICO")
}

// csvTable é um CSV já lido em memória, indexado por nome de coluna
// normalizado (ASCII, maiúsculas, sem espaços nas bordas).
type csvTable struct {
	cols map[string]int
	rows [][]string
}

func (t *csvTable) get(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *csvTable) getN(row []string, prefix string, n int) string {
	return t.get(row, prefix+"."+strconv.Itoa(n))
}

func readCSV(r io.Reader) (*csvTable, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// linha malformada: pula, como a ingestão original fazia
			continue
		}
		rows = append(rows, row)
	}
	return &csvTable{cols: cols, rows: rows}, nil
}

// normalizeHeader descarta bytes fora do ASCII e força maiúsculas, para que
// cabeçalhos com acentos ou BOM casem com os nomes esperados.
func normalizeHeader(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(strings.TrimSpace(b.String()))
}

func firstByte(s string, fallback byte) byte {
	if s == "" {
		return fallback
	}
	return s[0]
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
