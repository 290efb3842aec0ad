package routes

import (
	"github.com/gorilla/mux"
	"github.com/lfmcarvalho/gerenciamento_propriedades/cache"
	"github.com/lfmcarvalho/gerenciamento_propriedades/controllers"
	"github.com/lfmcarvalho/gerenciamento_propriedades/middleware"
	"github.com/lfmcarvalho/gerenciamento_propriedades/repository"
)

func Routes(router *mux.Router, users repository.UserRepository, properties repository.PropertyRepository, propertyCache cache.PropertyCache, secret []byte) {
	router.Use(middleware.RequestID)

	// Auth routes
	router.HandleFunc("/createUser", controllers.RegisterUser(users)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(users, secret)).Methods("POST")

	// Listing requires a verified token; create and delete take the owner
	// reference from the request itself.
	authenticate := middleware.AuthMiddleware(secret)
	router.Handle("/propriedades", authenticate(controllers.GetProperties(properties, propertyCache))).Methods("GET")
	router.HandleFunc("/propriedade", controllers.CreateProperty(properties, users, propertyCache)).Methods("POST")
	router.HandleFunc("/propriedades/{id}", controllers.DeleteProperty(properties, propertyCache)).Methods("DELETE")
}
