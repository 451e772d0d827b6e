package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/catalog"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/routes"
	"github.com/karthikram1909/refurbished-store/store"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting refurbished-store...")

	// Load environment variables
	_ = godotenv.Load()

	// Local state DB (session, cart, admin token slots)
	db := initDatabase()
	slots, err := bridge.Open(db)
	if err != nil {
		log.Fatalf("❌ Slot store migration failed: %v", err)
	}

	// Stores restore their last persisted state; corrupt or missing slots
	// just start the session anonymous with an empty cart.
	cart := store.NewCartStore(slots)
	sessions := store.NewSessionStore(slots, cart)
	if id := sessions.Current(); id != nil {
		log.Printf("🔑 Restored session for %s (%s)", id.Name, id.Role)
	}
	if n := len(cart.Lines()); n > 0 {
		log.Printf("🛒 Restored cart with %d line(s)", n)
	}

	// Remote store backend
	baseURL := os.Getenv("STORE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/api"
	}
	gw := gateway.New(baseURL, func() string {
		token, _ := slots.Get(bridge.SlotAdminToken)
		return token
	})

	hub := events.NewHub()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		Sessions: sessions,
		Cart:     cart,
		Slots:    slots,
		Gateway:  gw,
		Hub:      hub,
		PageSize: pageSize(),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Storefront facade running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase opens the slot store: a local sqlite file by default, postgres
// when DATABASE_URL is set.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("STATE_DB")
	if path == "" {
		path = "refurbished-store.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to open state DB: %v", err)
	}
	return db
}

func pageSize() int {
	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return catalog.DefaultPageSize
}
