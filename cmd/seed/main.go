package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

// Seeds a fresh database with a manager account and a small room block
// so the API is usable right after first start. Existing rows are left
// alone.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelreserve.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	staffRepo := repository.NewStaffRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	seedManager(ctx, staffRepo)
	seedRooms(ctx, roomRepo)
	seedGuests(ctx, guestRepo)
}

func seedManager(ctx context.Context, staff *repository.StaffRepository) {
	username := os.Getenv("SEED_MANAGER_USERNAME")
	if username == "" {
		username = "manager"
	}
	password := os.Getenv("SEED_MANAGER_PASSWORD")
	if password == "" {
		log.Fatal("SEED_MANAGER_PASSWORD is empty")
	}

	existing, err := staff.GetByUsername(ctx, username)
	if err != nil {
		log.Fatal(err)
	}
	if existing != nil {
		log.Printf("staff %q already exists, skipping", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	acct, err := domain.NewStaff(username, string(hash), domain.StaffRoleManager)
	if err != nil {
		log.Fatal(err)
	}
	if err := staff.Create(ctx, acct); err != nil {
		log.Fatal(err)
	}
	log.Printf("created manager account %q", username)
}

func seedRooms(ctx context.Context, rooms *repository.RoomRepository) {
	seed := []struct {
		number   int
		category domain.RoomCategory
		capacity int
		baseRate float64
	}{
		{101, domain.RoomStandard, 2, 180.0},
		{102, domain.RoomStandard, 2, 180.0},
		{103, domain.RoomDouble, 3, 250.0},
		{201, domain.RoomDouble, 3, 250.0},
		{202, domain.RoomSuite, 4, 400.0},
	}

	for _, s := range seed {
		existing, err := rooms.GetByNumber(ctx, s.number)
		if err != nil {
			log.Fatal(err)
		}
		if existing != nil {
			continue
		}
		room, err := domain.NewRoom(s.number, s.category, s.capacity, s.baseRate)
		if err != nil {
			log.Fatal(err)
		}
		if err := rooms.Create(ctx, room); err != nil {
			log.Fatal(err)
		}
		log.Printf("created room %d (%s)", room.Number, room.Category)
	}
}

func seedGuests(ctx context.Context, guests *repository.GuestRepository) {
	seed := []struct {
		name     string
		document string
		email    string
	}{
		{"Ana Souza", "111.222.333-44", "ana.souza@example.com"},
		{"Bruno Lima", "555.666.777-88", "bruno.lima@example.com"},
	}

	for _, s := range seed {
		existing, err := guests.GetByDocument(ctx, s.document)
		if err != nil {
			log.Fatal(err)
		}
		if existing != nil {
			continue
		}
		g, err := domain.NewGuest(s.name, s.document, s.email, "")
		if err != nil {
			log.Fatal(err)
		}
		if err := guests.Create(ctx, g); err != nil {
			log.Fatal(err)
		}
		log.Printf("created guest %s (%s)", g.Name, g.Document)
	}
}
