package routes

import (
	"context"
	"log"

	"portal_servicos/internal/adapter/http/handlers"
	"portal_servicos/internal/adapter/persistence/memory"
	"portal_servicos/internal/adapter/persistence/repository"
	"portal_servicos/internal/infrastructure/config"
	"portal_servicos/internal/infrastructure/database"
	"portal_servicos/internal/infrastructure/directory"
	"portal_servicos/internal/infrastructure/messaging"
	"portal_servicos/internal/infrastructure/payments"
	"portal_servicos/internal/infrastructure/storage"
	"portal_servicos/internal/usecase"
	"portal_servicos/internal/usecase/interfaces"
)

// buildHandlers connects the adapters selected by cfg. Optional backends
// (Redis, MinIO, directory, payment processor) degrade instead of failing:
// the affected operations report a configuration error.
func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var (
		requestRepo interfaces.IServiceRequestRepository
		typeRepo    interfaces.IRequestTypeRepository
		docStore    interfaces.IDocumentStore
		blobs       interfaces.IBlobStore
	)
	switch cfg.Persistence {
	case config.PersistenceMemory:
		log.Printf("[app][wiring] using in-memory persistence")
		requestRepo = memory.NewServiceRequestRepository()
		typeRepo = memory.NewRequestTypeRepository()
		docStore = memory.NewDocumentStore()
		blobs = storage.NewMemoryBlobStore()
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Handlers{}, cleanup, err
		}
		requestRepo = repository.NewServiceRequestDynamoRepository(ddb)
		typeRepo = repository.NewRequestTypeDynamoRepository(ddb)
		docStore = repository.NewDocumentDynamoRepository(ddb)
	}

	if cfg.MinIO.Enabled() {
		client, err := storage.NewMinioClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			log.Printf("[app][wiring] minio unavailable, attachments disabled err=%v", err)
		} else {
			blobs = storage.NewMinioBlobStore(client, cfg.MinIO.Bucket, cfg.MinIO.PublicURL)
		}
	}

	var (
		notifier interfaces.INotifier = messaging.LogNotifier{}
		bus      interfaces.ISettlementBus
	)
	if cfg.RedisURL != "" {
		rdb, err := messaging.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("[app][wiring] redis unavailable, using local bus err=%v", err)
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			notifier = messaging.NewRedisNotifier(rdb)
			bus = messaging.NewRedisSettlementBus(rdb)
		}
	}
	if bus == nil {
		bus = messaging.NewLocalSettlementBus()
	}

	var dir interfaces.IDirectory
	if cfg.DirectoryURL != "" {
		dir = directory.NewHTTPDirectory(cfg.DirectoryURL, cfg.DirectoryToken)
	}

	var (
		gateway interfaces.IPaymentGateway
		settler handlers.MockSettler
	)
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
		if mpGateway.MockMode() {
			settler = mpGateway
		}
	}
	mockPayments := settler != nil

	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, typeRepo, usecase.NewDocumentEmitter(docStore), dir, notifier)
	typeUseCase := usecase.NewRequestTypeUseCase(typeRepo)
	attachmentUseCase := usecase.NewAttachmentUseCase(requestRepo, blobs)
	chatUseCase := usecase.NewChatUseCase(requestRepo, dir, notifier)
	pixUseCase := usecase.NewPixChargeUseCase(requestRepo, gateway, dir, bus, notifier, cfg.Payment)
	watcher := usecase.NewSettlementWatcher(requestRepo, bus, pixUseCase, cfg.Payment.PollInterval)

	return Handlers{
		RequestTypes: handlers.NewRequestTypeHandler(typeUseCase),
		Requests:     handlers.NewServiceRequestHandler(requestUseCase),
		Attachments:  handlers.NewAttachmentHandler(attachmentUseCase),
		Chat:         handlers.NewChatHandler(chatUseCase),
		Pix:          handlers.NewPixHandler(pixUseCase, watcher, mockPayments, settler),
		MockPayments: mockPayments,
	}, cleanup, nil
}
