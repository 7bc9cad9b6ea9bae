package main

import (
	"flag"
	"log"
	"os"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/profile"
)

//go:generate go run . -o ../../profile.schema.json

func main() {
	out := flag.String("o", "profile.schema.json", "output path")
	flag.Parse()

	data, err := profile.SchemaJSON()
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated profile schema at %s", *out)
}
