package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/suncoast/diveshop/config"
	"github.com/suncoast/diveshop/internal/adapter/cartstore"
	"github.com/suncoast/diveshop/internal/adapter/httphandler"
	"github.com/suncoast/diveshop/internal/adapter/kafka"
	"github.com/suncoast/diveshop/internal/adapter/storage"
	"github.com/suncoast/diveshop/internal/core/port"
	"github.com/suncoast/diveshop/internal/core/service"
	"github.com/suncoast/diveshop/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type repos struct {
	catalog    storage.ProductsRepository
	promotions storage.PromotionsRepository
	blog       storage.BlogRepository
	services   storage.ServicesRepository
}

type coreServices struct {
	catalog    port.CatalogProvider
	carts      port.CartManager
	promotions port.PromotionManager
	blog       port.BlogProvider
	services   port.ServicesManager
	searcher   port.Searcher
}

type App struct {
	ctx            context.Context
	cfg            config.Config
	clientEvents   schema.Serde
	eventsProducer kafka.ClientEventsProducer
	sqlDB          storage.SQLDB
	cartSnapshots  cartstore.RedisSnapshots
	repos          repos
	services       coreServices
	httpServer     httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreator := schema.NewSchemaCreator(srClient)

	clientEventsSS := app.cfg.Broker.Topics.ClientEvents + "-value"
	clientEventsSerde, err := schema.NewSerdeClientEventV1(
		app.ctx,
		schema.SubjectOpt(clientEventsSS),
		schema.SchemaIdentifierOpt(schemaCreator),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.clientEvents = clientEventsSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	clientEventsTopic := app.cfg.Broker.Topics.ClientEvents

	eventsProducer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, clientEventsTopic),
		kafka.ProducerEncoderOpt(app.clientEvents),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.eventsProducer = eventsProducer

	sqlDB, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqlDB = sqlDB

	snapshots, err := cartstore.NewRedisSnapshots(
		ctx, app.cfg.Redis.Addr, app.cfg.Redis.CartTTL,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.cartSnapshots = snapshots

	app.repos.catalog = storage.NewProductsRepository(sqlDB)
	app.repos.promotions = storage.NewPromotionsRepository(sqlDB)
	app.repos.blog = storage.NewBlogRepository(sqlDB)
	app.repos.services = storage.NewServicesRepository(sqlDB)
}

func (app *App) initCoreServices() {
	app.services.catalog = service.NewCatalog(
		app.repos.catalog, app.eventsProducer,
	)
	app.services.carts = service.NewCart(
		app.cartSnapshots, app.eventsProducer,
	)
	app.services.promotions = service.NewPromotions(app.repos.promotions)
	app.services.blog = service.NewBlog(app.repos.blog)
	app.services.services = service.NewServices(app.repos.services)
	app.services.searcher = service.NewSearch(
		app.repos.catalog, app.repos.blog, app.repos.services,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.catalog)
	httphandler.RegisterCart(mux, app.services.carts)
	httphandler.RegisterPromotions(mux, app.services.promotions)
	httphandler.RegisterBlog(mux, app.services.blog)
	httphandler.RegisterServices(mux, app.services.services)
	httphandler.RegisterSearch(mux, app.services.searcher)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(
		addr, handler, app.cfg.HTTPHandlerTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.eventsProducer.Close()
	app.cartSnapshots.Close()
	app.sqlDB.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
