package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/stretch/config"
	"github.com/automoto/stretch/server/core"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 60, "Server tick rate (updates per second)")
	name := flag.String("name", "Stretch Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	assetsDir := flag.String("assets", "assets", "Directory holding the levels folder")
	tuning := flag.String("tuning", "", "Optional YAML file overriding gameplay tuning")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("[config] applied tuning from %s", *tuning)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	levels, err := leveldata.LoadAllLevels(os.DirFS(*assetsDir), config.Level.Dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	server, err := core.NewServer(core.Options{
		TickRate: *tickRate,
		Name:     *name,
		Version:  *version,
		Levels:   levels,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Stretch server %q on port %d (tick rate: %d/s, %d levels)",
		*name, *port, *tickRate, len(levels))
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
