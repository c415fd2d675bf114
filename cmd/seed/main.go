package main

import (
	"log"
	"os"

	"github.com/whisperlink/server/internal/config"
	"github.com/whisperlink/server/internal/database"
	"github.com/whisperlink/server/internal/namegen"
	"github.com/whisperlink/server/internal/repository"
	"github.com/whisperlink/server/internal/service"
)

// Seeds a demo link plus a couple of messages for local frontend work.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	seedKey := os.Getenv("SEED_KEY")
	if seedKey == "" {
		log.Fatal("Missing environment variable: SEED_KEY")
	}

	linkRepo := repository.NewLinkRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	generator := namegen.NewGenerator()

	linkService := service.NewLinkService(linkRepo, messageRepo, generator)
	messageService := service.NewMessageService(messageRepo, linkRepo, generator)

	link, err := linkService.CreateLink(seedKey, "Demo inbox", "Seeded link for local development")
	if err != nil {
		log.Fatal("Failed to create demo link:", err)
	}

	samples := []string{
		"Hey, this place looks great!",
		"First anonymous message :)",
	}
	for _, content := range samples {
		if _, err := messageService.SendMessage(link.LinkID, content); err != nil {
			log.Fatal("Failed to seed message:", err)
		}
	}

	log.Println("Demo link created:", link.LinkID)
	log.Println("  Share path: /link/" + link.LinkID)
	log.Println("  Messages seeded:", len(samples))
}
