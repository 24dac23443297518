package main

import (
	"log"
	"net/http"
	"os"

	"github.com/sathyamr/go-cart/app/cmd"
	"github.com/sathyamr/go-cart/app/configs"
	"github.com/sathyamr/go-cart/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.API_CATALOG_BASE_URL == "" {
		log.Fatalf("API_CATALOG_BASE_URL is empty! Please check your .env file.")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
