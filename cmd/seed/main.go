package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/refcode"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM room_rates")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM locations")

	// ================== LOCATIONS ==================
	log.Println("Creating locations...")
	newYork := domain.Location{Name: "Downtown New York", Code: "NY", Address: "350 5th Ave", City: "New York", Phone: "+1-212-555-0101", IsActive: true}
	losAngeles := domain.Location{Name: "Sunset Los Angeles", Code: "LA", Address: "8430 Sunset Blvd", City: "Los Angeles", Phone: "+1-323-555-0188", IsActive: true}
	db.Create(&newYork)
	db.Create(&losAngeles)

	// ================== USERS ==================
	log.Println("Creating users...")

	superAdmin := makeUser("Sam Porter", "superadmin@hotel.test", "super123", domain.RoleSuperAdmin, nil)
	db.Create(&superAdmin)
	log.Println("Super admin created: superadmin@hotel.test / super123")

	nyAdmin := makeUser("Alice Trent", "admin.ny@hotel.test", "admin123", domain.RoleAdmin, &newYork.ID)
	laAdmin := makeUser("Bryan Cole", "admin.la@hotel.test", "admin123", domain.RoleAdmin, &losAngeles.ID)
	db.Create(&nyAdmin)
	db.Create(&laAdmin)

	nyStaff := makeUser("Derek Moss", "staff.ny@hotel.test", "staff123", domain.RoleStaff, &newYork.ID)
	laStaff := makeUser("Elena Ruiz", "staff.la@hotel.test", "staff123", domain.RoleStaff, &losAngeles.ID)
	db.Create(&nyStaff)
	db.Create(&laStaff)

	customers := []struct {
		name, email string
		locationID  *int64
	}{
		{"Grace Hall", "grace@example.com", &newYork.ID},
		{"Hiro Tanaka", "hiro@example.com", &losAngeles.ID},
		{"Ivy Chen", "ivy@example.com", nil},
	}
	for _, cu := range customers {
		u := makeUser(cu.name, cu.email, "client123", domain.RoleCustomer, cu.locationID)
		db.Create(&u)
	}
	log.Println("Customers created (password: client123)")

	// ================== ROOMS & RATES ==================
	log.Println("Creating rooms and rates...")

	rooms := []struct {
		location   *domain.Location
		number     string
		roomType   string
		capacity   int
		priceCents int64
	}{
		{&newYork, "101", "standard", 2, 10000},
		{&newYork, "102", "standard", 2, 10000},
		{&newYork, "201", "deluxe", 3, 17500},
		{&newYork, "301", "suite", 4, 32000},
		{&losAngeles, "101", "standard", 2, 9000},
		{&losAngeles, "202", "deluxe", 3, 15500},
		{&losAngeles, "303", "suite", 5, 28000},
	}

	for _, spec := range rooms {
		room := domain.Room{
			RoomCode:   refcode.RoomCode(spec.number, spec.location.Code),
			LocationID: spec.location.ID,
			RoomNumber: spec.number,
			RoomType:   spec.roomType,
			Capacity:   spec.capacity,
			Status:     domain.RoomAvailable,
			IsActive:   true,
		}
		db.Create(&room)

		rate := domain.RoomRate{
			RoomID:     room.ID,
			RateType:   domain.RateBase,
			PriceCents: spec.priceCents,
			IsActive:   true,
		}
		db.Create(&rate)

		// A sample weekend rate so the rate screens have something to show.
		weekend := domain.RoomRate{
			RoomID:     room.ID,
			RateType:   domain.RateWeekend,
			PriceCents: spec.priceCents + spec.priceCents/5,
			IsActive:   true,
		}
		db.Create(&weekend)

		fmt.Printf("  %s (%s) base $%.2f/night\n", room.RoomCode, spec.roomType, float64(spec.priceCents)/100)
	}

	log.Println("Seed complete at", time.Now().Format(time.RFC3339))
}

func makeUser(name, email, password string, role domain.Role, locationID *int64) domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return domain.User{
		UserCode:     refcode.UserCode(string(role)),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		LocationID:   locationID,
		IsActive:     true,
	}
}
