// @title Plataforma 360 — API de Análise de Desempenho
// @version 1.0
// @description Backend de análise de desempenho institucional sobre os microdados do ENAMED: pontuação de respostas, matriz de temas, benchmark e ranking de IES.

// @contact.name Suporte Plataforma 360
// @contact.email suporte@plataforma360.com.br

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"p360_analytics_backend/internal/app"
	"p360_analytics_backend/internal/config"
	"p360_analytics_backend/pkg/configwatcher"
	"p360_analytics_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "executa apenas a migração do banco e encerra")
	migrate := flag.Bool("migrate", false, "força a migração do banco na subida (mesmo em modo release)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("falha ao carregar a configuração: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("migração do banco concluída, encerrando")
		return
	}

	application.RegisterConfigCallback(func(c *config.Config) {
		logger.Log.Info("configuração recarregada do disco")
	})
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(c interface{}) {
		if newCfg, ok := c.(*config.Config); ok {
			application.ApplyConfig(newCfg)
		}
	})

	application.Run()
}
