package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/syobocat/litsea/litsea"
)

func main() {
	var (
		modelPath   = flag.String("model", "", "Path to a trained model file")
		text        = flag.String("text", "", "Text to segment")
		interactive = flag.Bool("i", false, "Interactive mode")
		verbose     = flag.Bool("v", false, "Verbose output (per-position boundary predictions)")
	)
	flag.Parse()

	model, err := loadModel(*modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	seg := litsea.NewSegmenter(model)

	if *verbose {
		fmt.Printf("Model loaded. Stump count: %d\n", model.Len())
	}

	if *interactive {
		runInteractive(seg, *verbose)
		return
	}

	if *text != "" {
		printSegmentation(seg, *text, *verbose)
		return
	}

	flag.Usage()
}

// loadModel loads the model from path, or the embedded JEITA model if
// path is empty and the binary was built with the embed build tag.
func loadModel(path string) (*litsea.Model, error) {
	if path != "" {
		return litsea.LoadModelFile(path)
	}
	return litsea.LoadEmbeddedJEITA()
}

func runInteractive(seg *litsea.Segmenter, verbose bool) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Litsea Segmenter Interactive Mode")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if line == "quit" || line == "exit" {
			break
		}

		printSegmentation(seg, line, verbose)
	}
}

func printSegmentation(seg *litsea.Segmenter, text string, verbose bool) {
	if verbose {
		sentence := []rune(text)
		scores := seg.Score(sentence)
		fmt.Printf("Text: %s\n", text)
		fmt.Printf("Boundaries (%d positions): %v\n", len(scores), scores)
	}
	fmt.Println(seg.SegmentLine(text))
}
