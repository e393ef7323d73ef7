package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/migrations"
	infrapdf "github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// store agrupa los repositorios del driver elegido.
type store struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	products      repository.ProductRepository
	// db es el handle database/sql usado por goose.
	db    *sql.DB
	ping  httpRouter.PingFunc
	close func()
}

func openStore(ctx context.Context, cfg config.DBConfig) (*store, error) {
	if cfg.Driver == config.DriverSQLite {
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &store{
			categories:    sqlite.NewCategoryRepository(db),
			subCategories: sqlite.NewSubCategoryRepository(db),
			products:      sqlite.NewProductRepository(db),
			db:            db,
			ping:          db.PingContext,
			close:         func() { _ = db.Close() },
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db := postgres.OpenDB(pool)
	return &store{
		categories:    postgres.NewCategoryRepository(pool),
		subCategories: postgres.NewSubCategoryRepository(pool),
		products:      postgres.NewProductRepository(pool),
		db:            db,
		ping:          pool.Ping,
		close: func() {
			_ = db.Close()
			pool.Close()
		},
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a base de datos")
	}
	defer st.close()

	if cfg.DB.AutoMigrate {
		if err := migrations.Up(ctx, st.db, cfg.DB.Driver); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	categoryUC := usecase.NewCategoryUseCase(st.categories)
	subCategoryUC := usecase.NewSubCategoryUseCase(st.subCategories, st.categories)
	productUC := usecase.NewProductUseCase(st.products, st.categories, st.subCategories)

	// PDF: carta imprimible agrupada por categoría
	pdfGenerator := infrapdf.NewMenuPDFGenerator()
	menuUC := usecase.NewMenuUseCase(st.categories, st.subCategories, st.products, pdfGenerator, cfg.App.Name)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		DocsPath:    cfg.App.DocsPath,
	})
	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:    categoryUC,
		SubCategoryUC: subCategoryUC,
		ProductUC:     productUC,
		MenuUC:        menuUC,
		Ping:          st.ping,
		AppName:       cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
