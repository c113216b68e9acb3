package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/hrcauto/workshop-backoffice/internal/config"
	"github.com/hrcauto/workshop-backoffice/internal/database"
	"github.com/hrcauto/workshop-backoffice/internal/handler"
	"github.com/hrcauto/workshop-backoffice/internal/queue"
	"github.com/hrcauto/workshop-backoffice/internal/repository"
	"github.com/hrcauto/workshop-backoffice/internal/router"
	queue_publisher "github.com/hrcauto/workshop-backoffice/internal/service"
	"github.com/hrcauto/workshop-backoffice/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Sessions live in Redis when it is reachable so instances can
	// share them; otherwise fall back to the in-process store.
	rdb := config.NewRedisClient()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb)
		log.Printf("sessions: redis store")
	} else {
		store = session.NewMemoryStore()
		log.Printf("sessions: in-memory store (redis unavailable)")
	}

	users := repository.NewUserRepo(db)
	clients := repository.NewClientRepo(db)
	vehicles := repository.NewVehicleRepo(db)
	jobCards := repository.NewJobCardRepo(db, clients, vehicles)

	authH := handler.NewAuthHandler(cfg, users, store)
	jobH := handler.NewJobCardHandler(jobCards)
	if cfg.IntakeEvents {
		jobH.PublishEvent = queue_publisher.PublishJobCardCreated
	}
	clientH := handler.NewClientHandler(clients)

	if cfg.IntakeConsumer {
		go func() {
			if err := queue.StartIntakeConsumer(); err != nil {
				log.Printf("intake consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.Register(e, cfg, rdb, authH, jobH, clientH, store)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
