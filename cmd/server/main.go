package main

import (
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/safedocs/backend/config"
	"github.com/safedocs/backend/internal/capture"
	"github.com/safedocs/backend/internal/eventbus"
	"github.com/safedocs/backend/internal/handler"
	"github.com/safedocs/backend/internal/pkg/database"
	"github.com/safedocs/backend/internal/repository"
	"github.com/safedocs/backend/internal/router"
	"github.com/safedocs/backend/internal/service"
	"github.com/safedocs/backend/internal/service/orchestrator"
	"github.com/safedocs/backend/internal/subscriber"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 预置模板落库
	if err := service.InitDefaultTemplates(db); err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	// 附件存储
	store, err := capture.NewStore(cfg.Data.AttachmentDir)
	if err != nil {
		log.Fatalf("Failed to initialize attachment store: %v", err)
	}

	// 初始化 Repository
	templateRepo := repository.NewTemplateRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	rosterRepo := repository.NewRosterRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// 事件总线与审计订阅
	bus := eventbus.NewSubmissionEventBus()
	subscriber.NewSubmissionEventSubscriber(auditRepo).Register(bus)

	// 初始化 Service
	templateService := service.NewTemplateService(templateRepo)
	submissionService := service.NewSubmissionService(submissionRepo, templateRepo, rosterRepo, bus)
	rosterService := service.NewRosterService(rosterRepo)
	exportService := service.NewExportService(submissionRepo, attachmentRepo, store, bus)

	// 后台导出编排器
	exportOrchestrator, err := orchestrator.NewOrchestrator(cfg.Export.Workers, exportService)
	if err != nil {
		log.Fatalf("Failed to initialize export orchestrator: %v", err)
	}
	exportService.SetOrchestrator(exportOrchestrator)
	exportOrchestrator.Start()
	defer exportOrchestrator.Stop()

	// 初始化 Handler
	templateHandler := handler.NewTemplateHandler(templateService)
	submissionHandler := handler.NewSubmissionHandler(submissionService, exportService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	captureHandler := handler.NewCaptureHandler(
		capture.NewSignatureAdapter(store),
		capture.NewImageAdapter(store),
		store,
	)
	configHandler := handler.NewConfigHandler(cfg)

	// 设置路由
	r := router.Setup(cfg, templateHandler, submissionHandler, rosterHandler, captureHandler, configHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
