package main

import (
	"log"

	"github.com/Aakash17x08/linkhive/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linkhive failed to start: %v", err)
	}
}
