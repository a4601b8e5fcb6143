package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-seqview/logging"
)

const Version = "0.3.0"

var logFile = flag.String("debug", "", "Write debug logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.Setup(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: siftly-seqview [--debug debug.log] <sequence.json>")
		os.Exit(1)
	}

	data, err := newDataState(args[0])
	if err != nil {
		log.Fatalf("failed to load %q: %v", args[0], err)
	}

	m := initialModel(data)

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
