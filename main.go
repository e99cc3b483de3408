package main

import (
	"fmt"
	"log"

	"github.com/estefano99/pedidos-pos/configs"
	"github.com/estefano99/pedidos-pos/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB local de la terminal
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedOperator(); err != nil {
		log.Fatalf("seed operator failed: %v", err)
	}
	if err := configs.SeedStations(); err != nil {
		log.Fatalf("seed stations failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("pos terminal escuchando en", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
