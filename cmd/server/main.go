package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/config"
	"github.com/iliyamo/hbnb-api/internal/database"
	"github.com/iliyamo/hbnb-api/internal/handler"
	"github.com/iliyamo/hbnb-api/internal/repository"
	"github.com/iliyamo/hbnb-api/internal/router"
	"github.com/iliyamo/hbnb-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb, err := config.NewRedisClient()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	// Dependencies are built here once and handed to the handlers; no
	// package-level state anywhere.
	facade := service.NewFacade(
		repository.NewUserRepo(db),
		repository.NewAmenityRepo(db),
		repository.NewPlaceRepo(db),
		repository.NewReviewRepo(db),
		cfg.BcryptCost,
	)
	tokens := repository.NewRefreshTokenStore(rdb)

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg, facade, tokens),
		handler.NewUserHandler(facade),
		handler.NewAmenityHandler(facade),
		handler.NewPlaceHandler(facade),
		handler.NewReviewHandler(facade),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
