// ABOUTME: Basic example showing document enrichment with the scripture library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	scripture "scripture-tags/scripture-lib"
)

const page = `<html><body>
<p>Read <span class="getBible">John 3:16-18</span> today.</p>
<p><a class="getBible" data-format="tooltip" data-translation="kjv;web">Psalm 23:1</a></p>
</body></html>`

func main() {
	client, err := scripture.NewClient(scripture.WithChrome("auto"))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("=== Enriching a page ===")
	result, err := client.Enrich(ctx, page)
	if err != nil {
		log.Printf("Error enriching page: %v\n", err)
	} else {
		fmt.Printf("Elements: %d, fetched: %d, skipped: %d\n", result.Elements, result.Fetched, result.Skipped)
		fmt.Println(result.HTML)
	}

	fmt.Println("\n=== Looking up a passage ===")
	passages, err := client.Fetch(ctx, "kjv", "Genesis 1:1-3")
	if err != nil {
		log.Printf("Error fetching passage: %v\n", err)
		return
	}
	for _, p := range passages {
		fmt.Printf("%s (%s)\n", p.Reference, p.Abbreviation)
		for _, v := range p.Verses {
			fmt.Printf("  %d. %s\n", v.Number, v.Text)
		}
	}
}
