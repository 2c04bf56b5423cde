package routes

import (
	"net/http"
	"os"

	"github.com/clothplek/catalog-api/app/handlers"
	"github.com/clothplek/catalog-api/app/repositories"
	"github.com/clothplek/catalog-api/app/services"
	"github.com/clothplek/catalog-api/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) http.Handler {
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	navigationRepo := repositories.NewNavigationRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	navigationService := services.NewNavigationService(navigationRepo)

	validate := validator.New()
	render := renderer.New()

	categoryHandler := handlers.NewCategoryHandler(categoryService, validate, render)
	productHandler := handlers.NewProductHandler(productService, validate, render)
	navigationHandler := handlers.NewNavigationHandler(navigationService, validate, render)

	router := mux.NewRouter()

	router.HandleFunc("/categories", categoryHandler.FindAll).Methods("GET")
	router.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	router.HandleFunc("/categories/active", categoryHandler.Active).Methods("GET")
	router.HandleFunc("/categories/slug/{slug}", categoryHandler.FindBySlug).Methods("GET")
	router.HandleFunc("/categories/{id}", categoryHandler.FindOne).Methods("GET")
	router.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PATCH")
	router.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	router.HandleFunc("/products", productHandler.FindAll).Methods("GET")
	router.HandleFunc("/products", productHandler.Create).Methods("POST")
	router.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	router.HandleFunc("/products/new", productHandler.New).Methods("GET")
	router.HandleFunc("/products/slug/{slug}", productHandler.FindBySlug).Methods("GET")
	router.HandleFunc("/products/{id}/related", productHandler.Related).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.FindOne).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.Update).Methods("PATCH")
	router.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	router.HandleFunc("/navigation", navigationHandler.FindAll).Methods("GET")
	router.HandleFunc("/navigation", navigationHandler.Create).Methods("POST")
	router.HandleFunc("/navigation/active", navigationHandler.Active).Methods("GET")
	router.HandleFunc("/navigation/mega-menu", navigationHandler.MegaMenu).Methods("GET")
	router.HandleFunc("/navigation/key/{key}", navigationHandler.FindByKey).Methods("GET")
	router.HandleFunc("/navigation/{id}", navigationHandler.FindOne).Methods("GET")
	router.HandleFunc("/navigation/{id}", navigationHandler.Update).Methods("PATCH")
	router.HandleFunc("/navigation/{id}", navigationHandler.Delete).Methods("DELETE")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(gorillahandlers.LoggingHandler(os.Stdout, router))
}
