// Command settings-check reports how the editor sees a settings file: its
// categories, its editable leaves and whether saving it would change the
// layout on disk.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/billie-coop/picoconf/internal/jsondoc"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/treeedit"
)

func main() {
	// If we have an argument, check that file
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		if err := check(os.Args[1], data); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Otherwise, run the built-in examples
	fmt.Println("Pico Settings Check")
	fmt.Println("===================")
	fmt.Println()

	examples := map[string]string{
		"defaults":      store.DefaultDocument,
		"compact":       `{"Network":{"Port":80,"Host":"auto"}}`,
		"out of range":  `{"Audio": {"Volume": 350, "Levels": [1, 2]}}`,
		"not an object": `[1, 2, 3]`,
	}

	for _, name := range []string{"defaults", "compact", "out of range", "not an object"} {
		fmt.Printf("%s:\n", name)
		fmt.Println("─────────")
		if err := check(name, []byte(examples[name])); err != nil {
			fmt.Printf("ERROR: %v\n", err)
		}
		fmt.Println()
	}
}

func check(name string, data []byte) error {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for category, value := range doc.All() {
		sub, ok := value.AsObject()
		if !ok {
			fmt.Printf("%-20s %s (not a category)\n", category, value.Kind())
			continue
		}

		var leaves, unsupported, clamped int
		_, err := treeedit.Reconcile(sub, treeedit.Path{category}, func(_ *treeedit.Cursor, _ treeedit.Path, _ string, v jsondoc.Value) jsondoc.Value {
			leaves++
			if !treeedit.Editable(v) {
				unsupported++
			}
			if n, ok := v.AsNumber(); ok && n.Literal() != fmt.Sprint(treeedit.DisplayNumber(n)) {
				clamped++
			}
			return v
		})
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %d leaves, %d unsupported, %d outside the slider\n", category, leaves, unsupported, clamped)
	}

	if bytes.Equal(data, []byte(jsondoc.RenderDocument(doc))) {
		fmt.Println("layout: canonical")
	} else {
		fmt.Println("layout: saving will re-indent this file")
	}
	return nil
}
