package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/cinema-booking-core/internal/cache"
	"github.com/iliyamo/cinema-booking-core/internal/config"
	"github.com/iliyamo/cinema-booking-core/internal/database"
	"github.com/iliyamo/cinema-booking-core/internal/handler"
	"github.com/iliyamo/cinema-booking-core/internal/queue"
	"github.com/iliyamo/cinema-booking-core/internal/repository"
	"github.com/iliyamo/cinema-booking-core/internal/router"
	queue_publisher "github.com/iliyamo/cinema-booking-core/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config (.env aware)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	bookingRepo := repository.NewBookingRepo(db)
	seatRowRepo := repository.NewSeatRowRepo(db)

	// Redis backs the seat hold store.  Without it the hold endpoints are
	// not registered; schedule and display validation keep working.
	var holdHandler *handler.HoldHandler
	if rdb := config.NewRedisClient(); rdb != nil {
		holdHandler = handler.NewHoldHandler(seatRowRepo, cache.NewHoldStore(rdb), queue_publisher.Publisher{})
	} else {
		log.Printf("redis unavailable; seat hold endpoints disabled")
	}

	scheduleHandler := handler.NewScheduleHandler(bookingRepo, queue_publisher.Publisher{})
	displayHandler := handler.NewDisplayHandler()

	// Background consumer appends room.booked events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterSchedule(e, scheduleHandler)
	router.RegisterDisplay(e, displayHandler)
	if holdHandler != nil {
		router.RegisterHolds(e, holdHandler)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
