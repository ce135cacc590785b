package main

import (
	"fmt"
	"log"

	"github.com/cardroom/holdem/server"
)

func main() {
	fmt.Println("Starting Hold'em Table Server...")

	cfg := server.LoadConfig()

	s := server.NewServer(cfg)
	err := s.Start(cfg.Port)

	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
