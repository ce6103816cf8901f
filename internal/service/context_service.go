package service

import (
	"context"
	"fmt"
	"sync"

	"p360_analytics_backend/internal/engine"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheVersionKey = "p360:cache:version"

// ExamContextService mantém o estado somente-leitura do processo: os índices
// de gabarito e de mapeamento temático, carregados uma vez na subida e
// trocados atomicamente apenas em recarga explícita. Os índices podem ser
// compartilhados entre requisições concorrentes sem trava; o RWMutex protege
// só a troca de snapshot.
type ExamContextService struct {
	KeyRepo     *repository.AnswerKeyRepository
	MappingRepo *repository.MappingRepository
	StudentRepo *repository.StudentRepository
	Redis       *redis.Client

	mu         sync.RWMutex
	keys       engine.AnswerKeyIndex
	topics     engine.TopicIndex
	generation uint64

	// Referência nacional memoizada por geração: o singleflight garante no
	// máximo um recálculo por época de invalidação; chamadas concorrentes
	// recebem o resultado em voo.
	refGroup  singleflight.Group
	refMu     sync.RWMutex
	reference *engine.AggregateResult
	refGen    uint64
}

func NewExamContextService(
	keyRepo *repository.AnswerKeyRepository,
	mappingRepo *repository.MappingRepository,
	studentRepo *repository.StudentRepository,
	rdb *redis.Client,
) *ExamContextService {
	return &ExamContextService{
		KeyRepo:     keyRepo,
		MappingRepo: mappingRepo,
		StudentRepo: studentRepo,
		Redis:       rdb,
	}
}

// Load constrói os dois índices base a partir do banco. Chamado na subida e
// por Reload; nunca durante o atendimento normal de requisições.
func (s *ExamContextService) Load() error {
	rawKeys, err := s.KeyRepo.FindAll()
	if err != nil {
		return fmt.Errorf("carregar gabaritos: %w", err)
	}
	rawMappings, err := s.MappingRepo.FindAll()
	if err != nil {
		return fmt.Errorf("carregar mapeamento: %w", err)
	}

	keys := engine.BuildAnswerKeyIndex(rawKeys)
	topics := engine.BuildTopicIndex(rawMappings)

	s.mu.Lock()
	s.keys = keys
	s.topics = topics
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if len(keys) == 0 {
		logger.Log.Warn("Gabarito vazio: nenhum registro será pontuável até a importação")
	}
	logger.Log.Info("Contexto de prova carregado",
		zap.Int("gabaritos", len(keys)),
		zap.Int("mapeamentos", len(topics)),
		zap.Uint64("geracao", gen),
	)
	return nil
}

// Reload descarta os índices e a referência nacional memoizada e invalida o
// cache de respostas em Redis. Ponto único de invalidação do processo.
func (s *ExamContextService) Reload(ctx context.Context) error {
	if err := s.Load(); err != nil {
		return err
	}

	s.refMu.Lock()
	s.reference = nil
	s.refMu.Unlock()

	if s.Redis != nil {
		if err := s.Redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
			logger.Log.Error("Falha ao invalidar cache Redis", zap.Error(err))
		}
	}
	return nil
}

// Keys devolve o snapshot corrente do índice de gabaritos.
func (s *ExamContextService) Keys() engine.AnswerKeyIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys
}

// Topics devolve o snapshot corrente do índice temático.
func (s *ExamContextService) Topics() engine.TopicIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topics
}

func (s *ExamContextService) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// CacheVersion devolve a versão corrente do cache de respostas,
// incrementada a cada recarga. 0 quando o Redis está indisponível.
func (s *ExamContextService) CacheVersion(ctx context.Context) int64 {
	if s.Redis == nil {
		return 0
	}
	v, err := s.Redis.Get(ctx, cacheVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// NationalReference devolve a agregação da população inteira na
// granularidade diagnóstica, memoizada por geração de índice. Leitura
// desatualizada durante um recálculo é aceitável: a defasagem é limitada
// pela última recarga explícita.
func (s *ExamContextService) NationalReference(ctx context.Context) (engine.AggregateResult, error) {
	gen := s.Generation()

	s.refMu.RLock()
	if s.reference != nil && s.refGen == gen {
		ref := *s.reference
		s.refMu.RUnlock()
		return ref, nil
	}
	s.refMu.RUnlock()

	v, err, _ := s.refGroup.Do(fmt.Sprintf("ref:%d", gen), func() (interface{}, error) {
		records, err := s.StudentRepo.FindAll()
		if err != nil {
			return nil, err
		}
		ref, err := engine.BuildReference(records, s.Keys(), s.Topics())
		if err != nil {
			return nil, err
		}

		s.refMu.Lock()
		s.reference = &ref
		s.refGen = gen
		s.refMu.Unlock()

		logger.Log.Info("Referência nacional recalculada",
			zap.Int("temas", len(ref.Aggregates)),
			zap.Int("registros", ref.Students),
			zap.Uint64("geracao", gen),
		)
		return ref, nil
	})
	if err != nil {
		return engine.AggregateResult{}, err
	}
	return v.(engine.AggregateResult), nil
}
