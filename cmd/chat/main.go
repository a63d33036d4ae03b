// Command chat is a line-oriented REPL that attaches the travel tools
// to an OpenAI-compatible chat completions endpoint.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/0jonjo/tripkit/internal/agent"
	"github.com/0jonjo/tripkit/internal/config"
	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/toolkit"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(log); err != nil {
		log.Error("chat exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ValidateChat(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	gen := itinerary.NewGenerator(nil)
	registry := toolkit.NewTravelRegistry(gen, log, nil)
	a := agent.New(cfg, registry, log)

	fmt.Printf("Travel assistant (%s). Tools: %s.\n", cfg.OpenAIModel, strings.Join(registry.Names(), ", "))
	fmt.Println(`Type a question, or "exit" to quit.`)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		answer, err := a.Send(ctx, line)
		if err != nil {
			log.Error("conversation turn failed", "err", err)
			continue
		}
		fmt.Println(answer)
	}

	return scanner.Err()
}
