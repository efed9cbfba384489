package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/medmind/backend/internal/config"
	chatmodel "github.com/zhouzirui/medmind/backend/internal/model/chat"
	"github.com/zhouzirui/medmind/backend/internal/model/persona"
	"github.com/zhouzirui/medmind/backend/internal/service/ai"
	"github.com/zhouzirui/medmind/backend/internal/service/chat"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] failed to load .env, using system environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	message := flag.String("message", "", "user message")
	name := flag.String("name", "", "user name")
	mood := flag.String("mood", "", "reported mood (sad, angry, stressed, happy, ...)")
	dry := flag.Bool("dry", false, "print the prompt without calling the provider")
	timeout := flag.Duration("timeout", 45*time.Second, "request timeout")

	flag.Parse()

	req := chatmodel.Request{Message: *message, Name: *name, Mood: *mood}.Normalize()
	if req.Message == "" {
		flag.Usage()
		log.Fatal("-message is required")
	}

	medmind, err := persona.MedMind()
	if err != nil {
		log.Fatalf("failed to load persona: %v", err)
	}
	builder := ai.NewPromptBuilder(medmind)

	fmt.Println("=== prompt ===")
	fmt.Println(builder.Build(req.Message, req.Name, req.Mood))
	if *dry {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var generator ai.Generator
	if cfg.AI.HasCredential() {
		generator, err = ai.NewGenerator(ctx, cfg.AI)
		if err != nil {
			log.Printf("[WARN] failed to initialize %s generator: %v", cfg.AI.Provider, err)
		}
	}

	outcome := chat.NewService(builder, generator, cfg.AI).Generate(ctx, req)
	fmt.Printf("=== reply (%s, provider=%s, model=%s) ===\n", outcome.Kind, cfg.AI.Provider, cfg.AI.Model)
	fmt.Println(outcome.Reply())
	if outcome.Err != nil {
		log.Printf("generation error: %v", outcome.Err)
	}
}
