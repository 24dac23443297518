package routes

import (
	"github.com/gorilla/mux"
	"github.com/sathyamr/go-cart/app/configs"
	"github.com/sathyamr/go-cart/app/handlers"
	"github.com/sathyamr/go-cart/app/middlewares"
	"github.com/sathyamr/go-cart/app/repositories"
	"github.com/sathyamr/go-cart/app/services"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	catalogSvc := services.NewCatalogService(configs.LoadENV.API_CATALOG_BASE_URL)
	cartSvc := services.NewCartService(cartRepo, cartItemRepo, catalogSvc)

	cartHandler := handlers.NewCartHandler(cartSvc)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)

	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)

	router.HandleFunc("/cart/item", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/cart/items", cartHandler.ListCarts).Methods("GET")
	router.HandleFunc("/cart/items/{cartItemId}", cartHandler.GetCartItem).Methods("GET")
	router.HandleFunc("/cart/checkout-value/{cartId}", cartHandler.CheckoutValue).Methods("GET")
	router.HandleFunc("/cart/{cartId}", cartHandler.ClearCart).Methods("PUT")

	router.HandleFunc("/product/{id}", catalogHandler.GetProduct).Methods("GET")
	router.HandleFunc("/warehouse/distance", catalogHandler.GetWarehouseDistance).Methods("GET")

	return router
}
