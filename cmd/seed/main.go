package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"roomrental/internal/config"
	"roomrental/internal/database"
	"roomrental/internal/domain/auth"
	"roomrental/internal/domain/room"
	"roomrental/internal/domain/roomtype"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&roomtype.RoomType{},
		&room.Room{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := auth.User{
		Name:         "Admin",
		Email:        "admin@roomrental.local",
		PasswordHash: string(adminHash),
		Role:         auth.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := auth.User{
		Name:          "Asel Nurlanovna",
		Email:         "asel@roomrental.local",
		PasswordHash:  string(ownerHash),
		ContactNumber: "+7 700 123 4567",
		Role:          auth.RoleUser,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating room types...")
	typeNames := []string{"Studio", "Single Room", "Shared Room", "1 Bedroom", "2 Bedroom"}
	types := make(map[string]string, len(typeNames))
	for _, name := range typeNames {
		t := roomtype.RoomType{TypeName: name, Status: roomtype.StatusActive}
		if err := db.Create(&t).Error; err != nil {
			log.Fatal(err)
		}
		types[name] = t.ID
	}

	log.Println("Creating room listings...")
	listings := []room.Room{
		{
			OwnerID:            owner.ID,
			OwnerContactNumber: owner.ContactNumber,
			RoomTitle:          "Bright studio near the university",
			MonthlyPrice:       85000,
			Location:           "Almaty, Bostandyk district",
			RoomTypeID:         types["Studio"],
			Description:        "Furnished studio, utilities included.",
			IsAvailable:        true,
			ApprovalStatus:     room.ApprovalApproved,
		},
		{
			OwnerID:            owner.ID,
			OwnerContactNumber: owner.ContactNumber,
			RoomTitle:          "Single room in a shared flat",
			MonthlyPrice:       45000,
			Location:           "Almaty, Medeu district",
			RoomTypeID:         types["Single Room"],
			IsAvailable:        true,
			ApprovalStatus:     room.ApprovalPending,
		},
	}
	for i := range listings {
		if err := db.Create(&listings[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Seed complete: %d users, %d room types, %d listings", 2, len(typeNames), len(listings))
}
