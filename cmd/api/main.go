package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/notify"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	rateRepo := repository.NewRateRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notify.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(locationRepo, roomRepo, rateRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		rateRepo,
		userRepo,
		hub,
		cfg.CrossLocationFee,
		cfg.ReferenceMaxAttempts,
	)
	bookingHandler := booking.NewHandler(bookingService)
	notifyHandler := notify.NewHandler(hub)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		authed := v1.Group("/")
		authed.Use(authMiddleware(j))
		{
			authHandler.RegisterProtectedRoutes(authed)
			bookingHandler.RegisterUserRoutes(authed)
		}

		// staff, admin, super admin
		staff := v1.Group("/")
		staff.Use(authMiddleware(j), roleMiddleware(domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin))
		{
			bookingHandler.RegisterStaffRoutes(staff)
			notifyHandler.RegisterStaffRoutes(staff)
		}

		// admin, super admin
		admin := v1.Group("/")
		admin.Use(authMiddleware(j), roleMiddleware(domain.RoleAdmin, domain.RoleSuperAdmin))
		{
			catalogHandler.RegisterAdminRoutes(admin)
		}

		// super admin only
		super := v1.Group("/")
		super.Use(authMiddleware(j), roleMiddleware(domain.RoleSuperAdmin))
		{
			bookingHandler.RegisterSuperAdminRoutes(super)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func roleMiddleware(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := domain.Role(c.GetString("role"))
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		response.AbortError(c, http.StatusForbidden, "Insufficient permissions")
	}
}
