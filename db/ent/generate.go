package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run from the repository root: go run ./db/ent
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/invoicepilot/invoicepilot/gen/ent",
			Schema:  "github.com/invoicepilot/invoicepilot/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
