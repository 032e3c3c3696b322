// Command render generates a README offline: it reads project metadata from
// a JSON file, runs the deterministic fallback assembler, and writes the
// Markdown result. No network, no database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
	"github.com/readme-maestro/maestro-backend/internal/render"
)

func main() {
	in := flag.String("in", "", "path to project metadata JSON (required)")
	out := flag.String("out", "", "output file (default: stdout)")
	style := flag.String("style", "flat", "badge style: flat, plastic, for-the-badge")
	toc := flag.Bool("toc", false, "prepend a table of contents")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		log.Fatal("missing -in")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}

	var meta assembler.ProjectMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}

	a := assembler.New(assembler.NewBadgeRegistry(*style), assembler.DefaultLimits(), nil)
	doc, err := a.Generate(context.Background(), meta)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	md := render.Markdown(doc)
	if *toc {
		md = render.TableOfContents(md) + md
	}

	if *out == "" {
		os.Stdout.WriteString(md)
		return
	}
	if err := os.WriteFile(*out, []byte(md), 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d words, %s)", *out, doc.WordCount, doc.Source)
}
