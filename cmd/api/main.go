package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outreach-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm"
	"github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/outreach-crm-api/infrastructure/repository"
	"github.com/vfg2006/outreach-crm-api/internal/api"
	"github.com/vfg2006/outreach-crm-api/internal/config"
	"github.com/vfg2006/outreach-crm-api/internal/scheduler"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/reporting"
	"github.com/vfg2006/outreach-crm-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup("info")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	crmClient := crmclient.NewClient(cfg)
	crmIntegrator := crm.New(crmClient)

	// Inicializa o serviço de relatórios com suporte a cache
	reportService := reporting.NewService(cfg, crmIntegrator, reporting.NewMetrics(registry)).
		WithCache(snapshotRepo, cfg.Report.CacheTTL())

	reportSyncService := scheduler.NewReportSnapshotSyncService(reportService, snapshotRepo, cfg)

	// Inicia o agendador em background
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		logrus.Info("Agendador de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		reportSyncService,
		registry,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
