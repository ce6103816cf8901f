// Importação em lote dos microdados a partir do diretório configurado.
//
// A mesma ingestão está disponível na API (POST /admin/import/:dataset);
// este script serve para a carga inicial ou para recarregar a base inteira
// sem passar pelo servidor.
//
// Uso: go run scripts/import_data.go

package main

import (
	"context"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"p360_analytics_backend/internal/config"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/pkg/database"
	"p360_analytics_backend/pkg/logger"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("não foi possível ler o arquivo de configuração: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("falha ao interpretar o arquivo de configuração: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("falha na conexão com o banco: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("falha na migração do banco: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("falha na conexão com o redis: %v", err)
	}

	studentRepo := repository.NewStudentRepository(db)
	keyRepo := repository.NewAnswerKeyRepository(db)
	mappingRepo := repository.NewMappingRepository(db)
	localityRepo := repository.NewLocalityRepository(db)

	examContext := service.NewExamContextService(keyRepo, mappingRepo, studentRepo, rdb)
	importer := service.NewImportService(
		studentRepo,
		keyRepo,
		mappingRepo,
		localityRepo,
		examContext,
		&cfg,
		logger.Log,
	)

	log.Println("iniciando a importação dos microdados...")
	if err := importer.ImportAll(context.Background()); err != nil {
		log.Fatalf("importação interrompida: %v", err)
	}
	log.Println("importação concluída!")
}
