package routes

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"real-estate-api/controllers"
	"real-estate-api/middleware"
	"real-estate-api/services"
	"real-estate-api/utils"
)

func Routes(router *mux.Router, db *gorm.DB, redisClient *redis.Client, tokens *utils.TokenManager) {
	propertySvc := services.NewPropertyService(db)
	favoriteSvc := services.NewFavoriteService(db)
	authSvc := services.NewAuthService(db, tokens)

	auth := middleware.NewAuth(tokens)

	// Auth routes
	router.HandleFunc("/auth/register", controllers.Register(authSvc)).Methods("POST")
	router.HandleFunc("/auth/login", controllers.Login(authSvc)).Methods("POST")

	// Property routes. The list and detail endpoints take an optional token
	// so isFavorite can be annotated for signed-in callers.
	router.HandleFunc("/property", controllers.GetAllProperties(propertySvc)).Methods("GET")
	router.Handle("/property/list", auth.Optional(controllers.ListProperties(propertySvc, redisClient))).Methods("GET")
	router.HandleFunc("/property/search", controllers.SearchProperties(propertySvc)).Methods("POST")
	router.Handle("/property/{id}", auth.Optional(controllers.GetPropertyByID(propertySvc))).Methods("GET")
	router.Handle("/property", auth.Require(controllers.CreateProperty(propertySvc, redisClient))).Methods("POST")
	router.Handle("/property/{id}", auth.Require(controllers.UpdateProperty(propertySvc, redisClient))).Methods("PUT")
	router.Handle("/property/{id}", auth.Require(controllers.DeleteProperty(propertySvc, redisClient))).Methods("DELETE")

	// Favorites routes
	router.Handle("/favorites/add/{propertyId}", auth.Require(controllers.AddFavorite(favoriteSvc))).Methods("POST")
	router.Handle("/favorites/remove/{propertyId}", auth.Require(controllers.RemoveFavorite(favoriteSvc))).Methods("DELETE")
	router.Handle("/favorites", auth.Require(controllers.GetFavorites(favoriteSvc))).Methods("GET")
}
