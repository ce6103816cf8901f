package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"p360_analytics_backend/internal/engine"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
	"p360_analytics_backend/pkg/monitoring"
)

type ReportService struct {
	StudentRepo *repository.StudentRepository
	Context     *ExamContextService
	Storage     *StorageService
}

func NewReportService(
	studentRepo *repository.StudentRepository,
	examContext *ExamContextService,
	storage *StorageService,
) *ReportService {
	return &ReportService{
		StudentRepo: studentRepo,
		Context:     examContext,
		Storage:     storage,
	}
}

// StudentReportRow é o desempenho percentual de um aluno por grande área.
// A média geral é a média simples das áreas em que o aluno pontuou.
type StudentReportRow struct {
	AlunoRegistroID uint               `json:"aluno_registro_id"`
	Areas           map[string]float64 `json:"areas"`
	MediaGeral      float64            `json:"media_geral"`
}

// DetailedReport é o relatório completo de uma IES: desempenho por aluno e a
// análise por tema, as mesmas duas visões do arquivo exportado.
type DetailedReport struct {
	Ies    string             `json:"ies"`
	Areas  []string           `json:"areas"`
	Alunos []StudentReportRow `json:"alunos"`
	Temas  []MatrixRow        `json:"temas"`
}

// GetDetailedReport monta o relatório detalhado de uma IES.
func (s *ReportService) GetDetailedReport(coCurso int) (*DetailedReport, error) {
	students, err := s.StudentRepo.FindByCurso(coCurso)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, util.ErrIESNotFound
	}
	iesNome := students[0].IesNome

	scored, skipped := engine.ScorePopulation(students, s.Context.Keys())
	monitoring.UnscoreableRecords.Add(float64(skipped))
	if len(scored) == 0 {
		return nil, util.ErrNoScoreableRecords
	}
	topics := s.Context.Topics()

	// acumula (aluno, grande área) sobre as linhas mapeadas
	type cell struct{ sum, count int }
	perStudent := make(map[uint]map[string]*cell)
	areaSet := make(map[string]struct{})
	var order []uint
	dropped := 0

	for _, q := range scored {
		topic, ok := topics[engine.TopicKey{CoCaderno: q.CoCaderno, NuQuestao: q.NuQuestao}]
		if !ok {
			dropped++
			continue
		}
		areas, ok := perStudent[q.RecordID]
		if !ok {
			areas = make(map[string]*cell)
			perStudent[q.RecordID] = areas
			order = append(order, q.RecordID)
		}
		c, ok := areas[topic.GrandeArea]
		if !ok {
			c = &cell{}
			areas[topic.GrandeArea] = c
		}
		c.sum += q.Acerto
		c.count++
		areaSet[topic.GrandeArea] = struct{}{}
	}
	monitoring.DroppedQuestions.Add(float64(dropped))
	if len(perStudent) == 0 {
		return nil, util.ErrNoScoreableRecords
	}

	areaNames := make([]string, 0, len(areaSet))
	for a := range areaSet {
		areaNames = append(areaNames, a)
	}
	sort.Strings(areaNames)

	rows := make([]StudentReportRow, 0, len(order))
	for _, id := range order {
		areas := make(map[string]float64, len(perStudent[id]))
		sum := 0.0
		for name, c := range perStudent[id] {
			pct := util.Round2(float64(c.sum) / float64(c.count) * 100)
			areas[name] = pct
			sum += pct
		}
		media := 0.0
		if len(areas) > 0 {
			media = util.Round2(sum / float64(len(areas)))
		}
		rows = append(rows, StudentReportRow{
			AlunoRegistroID: id,
			Areas:           areas,
			MediaGeral:      media,
		})
	}

	agg := engine.Aggregate(scored, topics, engine.BySubspecialty)
	temas := make([]MatrixRow, 0, len(agg.Aggregates))
	for _, a := range agg.Aggregates {
		temas = append(temas, MatrixRow{
			GrandeArea:       a.GrandeArea,
			Subespecialidade: a.Subespecialidade,
			AcertoMedio:      util.Round2(a.Acerto * 100),
			VolumeQuestoes:   a.VolumeQuestoes,
		})
	}

	return &DetailedReport{
		Ies:    iesNome,
		Areas:  areaNames,
		Alunos: rows,
		Temas:  temas,
	}, nil
}

// ExportCSV gera o relatório detalhado em CSV (separador ';', o mesmo dos
// microdados) e o envia ao provedor de armazenamento. Devolve a URL do
// arquivo gerado.
func (s *ReportService) ExportCSV(ctx context.Context, coCurso int) (string, error) {
	report, err := s.GetDetailedReport(coCurso)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := append([]string{"aluno_registro_id"}, report.Areas...)
	header = append(header, "Media Geral (%)")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, row := range report.Alunos {
		record := make([]string, 0, len(header))
		record = append(record, strconv.FormatUint(uint64(row.AlunoRegistroID), 10))
		for _, area := range report.Areas {
			if pct, ok := row.Areas[area]; ok {
				record = append(record, strconv.FormatFloat(pct, 'f', 2, 64))
			} else {
				record = append(record, "")
			}
		}
		record = append(record, strconv.FormatFloat(row.MediaGeral, 'f', 2, 64))
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("Relatorio_IES_%d.csv", coCurso)
	return s.Storage.Upload(ctx, filename, &buf, int64(buf.Len()), "text/csv")
}
