package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roomrental/internal/config"
	"roomrental/internal/database"
	"roomrental/internal/domain/auth"
	"roomrental/internal/domain/room"
	"roomrental/internal/domain/roomtype"
	"roomrental/internal/domain/upload"
	"roomrental/internal/middleware"
	jwtsvc "roomrental/internal/pkg/jwt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&auth.User{}, &roomtype.RoomType{}, &room.Room{}); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := auth.NewRepository(db)
	typeRepo := roomtype.NewRepository(db)
	roomRepo := room.NewRepository(db)
	mediaStore := upload.NewStore(cfg.UploadDir)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	typeService := roomtype.NewService(typeRepo)
	typeHandler := roomtype.NewHandler(typeService)

	roomService := room.NewService(roomRepo, typeRepo, mediaStore)
	roomHandler := room.NewHandler(roomService)

	uploadService := upload.NewService(mediaStore, cfg.MaxImageSize, cfg.MaxVideoSize)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())
	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		admin := v1.Group("/")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())

		auth.RegisterRoutes(v1, protected, authHandler)
		roomtype.RegisterRoutes(v1, admin, typeHandler)
		room.RegisterRoutes(v1, protected, roomHandler)
		upload.RegisterRoutes(protected, uploadHandler)
	}

	log.Printf("Room rental API listening on :%s (%s)", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
