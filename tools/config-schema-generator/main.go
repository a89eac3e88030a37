// config-schema-generator writes the JSON schema of the nvim2idea config file.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/grovetools/nvim2idea/pkg/config"
)

func main() {
	out := flag.String("o", "nvim2idea.schema.json", "output file")
	flag.Parse()

	data, err := config.Schema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated config schema at %s", *out)
}
