package main

import (
	"log"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/app"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	application.Run()
}
