package main

import "bufio"
import "flag"
import "fmt"
import "os"
import "strings"

import "github.com/neurlang/associator/datasets/patternfile"
import "github.com/neurlang/associator/pattern"
import "github.com/neurlang/associator/trainer"

func main() {
	config := flag.String("config", "good_set.txt", "pattern file with settings and training bitmaps")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	logfile := flag.String("log", "", "append the run log to this file")
	flag.Parse()

	f, err := patternfile.LoadFile(*config)
	if err != nil {
		fmt.Println("Cannot load the pattern file:", err)
		os.Exit(1)
	}
	var h = &f.HyperParameters
	if *seed != 0 {
		h.Seed = *seed
	}
	if *logfile != "" {
		if err := h.SetLogger(*logfile); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	originals, err := f.Collection(h.Rand())
	if err != nil {
		fmt.Println("No usable bitmaps:", err)
		os.Exit(1)
	}
	h.Printf("seed %d, pattern file %s", h.Seed, *config)

	fmt.Println("Bits per bitmap:      ", h.Width*h.Height)
	fmt.Println("of which are relevant:", originals.RelevantBitCount())

	var present trainer.PresentFunc
	if h.Interactive {
		present = interactive(bufio.NewScanner(os.Stdin))
	}

	report, err := trainer.Run(h, originals, present)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("Presented bitmaps:", report.Presented)
	fmt.Println("Recognized:       ", report.Correct)
	fmt.Printf("Recognition rate:  %d%%\n", report.Rate())
}

// interactive shows every sample with the answer and waits for Enter, quit stops
func interactive(in *bufio.Scanner) trainer.PresentFunc {
	return func(sample pattern.Pattern, answer string) bool {
		fmt.Println("Next sample:")
		fmt.Print(sample)
		fmt.Println("Recognized as:", answer)
		if answer == sample.Label() {
			fmt.Println("That is correct.")
		} else {
			fmt.Println("That is not correct.")
		}
		fmt.Println()
		fmt.Println("Press Enter to continue or type 'quit'.")
		if !in.Scan() {
			return false
		}
		return strings.TrimSpace(in.Text()) != "quit"
	}
}
