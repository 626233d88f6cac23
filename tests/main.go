package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"homely/config"
	"homely/database"
	"homely/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the catalog, scheduling configuration and a handful of bookings so
// the scheduling endpoints have realistic data to work against.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(config.AppConfig.DatabaseName)

	categoriesColl := db.Collection("categories")
	servicesColl := db.Collection("services")
	configColl := db.Collection("scheduling_config")
	bookingsColl := db.Collection("bookings")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing seed data.
	for _, coll := range []string{"categories", "services", "scheduling_config", "bookings"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	// Categories and their services.
	categories := []models.Category{
		{ID: "cleaning", Name: "Home Cleaning"},
		{ID: "plumbing", Name: "Plumbing"},
		{ID: "electrical", Name: "Electrical"},
	}
	services := []models.Service{
		{ID: "deep-clean", Name: "Deep Clean", CategoryID: "cleaning", DurationMinutes: 120, BasePrice: 89.0, Active: true},
		{ID: "standard-clean", Name: "Standard Clean", CategoryID: "cleaning", DurationMinutes: 60, BasePrice: 49.0, Active: true},
		{ID: "drain-unblock", Name: "Drain Unblocking", CategoryID: "plumbing", DurationMinutes: 45, BasePrice: 65.0, Active: true},
		{ID: "tap-install", Name: "Tap Installation", CategoryID: "plumbing", DurationMinutes: 30, BasePrice: 40.0, Active: true},
		{ID: "socket-repair", Name: "Socket Repair", CategoryID: "electrical", DurationMinutes: 40, BasePrice: 55.0, Active: true},
		{ID: "rewire-room", Name: "Room Rewiring", CategoryID: "electrical", DurationMinutes: 180, BasePrice: 220.0, Active: false},
	}

	var categoryDocs []interface{}
	for _, cat := range categories {
		categoryDocs = append(categoryDocs, cat)
	}
	if _, err := categoriesColl.InsertMany(ctx, categoryDocs); err != nil {
		log.Fatalf("Failed to insert categories: %v", err)
	}

	var serviceDocs []interface{}
	for _, svc := range services {
		serviceDocs = append(serviceDocs, svc)
	}
	if _, err := servicesColl.InsertMany(ctx, serviceDocs); err != nil {
		log.Fatalf("Failed to insert services: %v", err)
	}

	// Scheduling configuration: Mon-Fri 08:00-18:00, Sat 09:00-14:00,
	// 60-minute slots with a 15-minute break, 4-hour lead time.
	cfg := models.SchedulingConfig{
		Windows: []models.AvailabilityWindow{
			{Weekday: 1, Enabled: true, Start: 480, End: 1080},
			{Weekday: 2, Enabled: true, Start: 480, End: 1080},
			{Weekday: 3, Enabled: true, Start: 480, End: 1080},
			{Weekday: 4, Enabled: true, Start: 480, End: 1080},
			{Weekday: 5, Enabled: true, Start: 480, End: 1080},
			{Weekday: 6, Enabled: true, Start: 540, End: 840},
		},
		Policy: models.SchedulingPolicy{
			SlotIntervalMinutes: 60,
			BreakMinutes:        15,
			LeadTimeEnabled:     true,
			LeadTimeHours:       4,
		},
		CategoryLimits: map[string]int{
			"cleaning": 3,
			"plumbing": 2,
		},
		UpdatedAt: time.Now(),
	}
	configDoc := bson.M{"config_id": "default", "config": cfg}
	if _, err := configColl.InsertOne(ctx, configDoc); err != nil {
		log.Fatalf("Failed to insert scheduling configuration: %v", err)
	}

	// A spread of confirmed bookings over the next 7 days.
	activeServices := []models.Service{}
	for _, svc := range services {
		if svc.Active {
			activeServices = append(activeServices, svc)
		}
	}

	rand.Seed(time.Now().UnixNano())
	now := time.Now()
	var bookingDocs []interface{}
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		if day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format("2006-01-02")
		for i := 0; i < 3+rand.Intn(3); i++ {
			svc := activeServices[rand.Intn(len(activeServices))]
			start := 480 + 75*rand.Intn(7)
			bookingDocs = append(bookingDocs, models.Booking{
				ID:        uuid.New().String(),
				UserID:    uuid.New().String(),
				Date:      date,
				Start:     start,
				Items:     []models.BookingItem{{ServiceID: svc.ID, Quantity: 1}},
				Status:    models.BookingStatusConfirmed,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}
	if _, err := bookingsColl.InsertMany(ctx, bookingDocs); err != nil {
		log.Fatalf("Failed to insert bookings: %v", err)
	}

	log.Printf("Seeded %d categories, %d services, 1 scheduling configuration, %d bookings",
		len(categories), len(services), len(bookingDocs))
}
