package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"katechon/internal/api"
	"katechon/internal/commands"
	"katechon/internal/config"
	"katechon/internal/feed"
	"katechon/internal/llm"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	registry := commands.NewRegistry(llm.NewClient(nil), feed.NewFetcher(nil))
	log.Printf("[Main] Registered commands: %v", registry.Names())
	log.Printf("[Main] Default model %s at %s, %d feeds configured", cfg.Ollama.Model, cfg.Ollama.URL, len(cfg.Feeds))

	r := api.SetupRouter(cfg, registry)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
