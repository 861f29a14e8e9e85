package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vanderheijden86/structree/pkg/config"
	"github.com/vanderheijden86/structree/pkg/debug"
	"github.com/vanderheijden86/structree/pkg/model"
	"github.com/vanderheijden86/structree/pkg/parse"
	"github.com/vanderheijden86/structree/pkg/render"
	"github.com/vanderheijden86/structree/pkg/ui"
	"github.com/vanderheijden86/structree/pkg/version"
	"github.com/vanderheijden86/structree/pkg/watcher"
)

func main() {
	printMode := flag.String("print", "", "Render to stdout instead of opening the TUI (ascii|markdown|json)")
	watchFlag := flag.Bool("watch", false, "Reparse when the input file changes (TUI only)")
	indentFlag := flag.Int("indent", 0, "Spaces per level for markdown output (overrides config)")
	helpFlag := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *helpFlag {
		fmt.Println("Usage: stree [options] [file]")
		fmt.Println("\nAn interactive editor for textual directory structures.")
		fmt.Println("Reads a markdown bullet list or an ASCII box-drawing tree from")
		fmt.Println("a file (or stdin when piped) and opens it as an editable tree.")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("stree %s\n", version.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if *indentFlag > 0 {
		cfg.Indent = *indentFlag
	}
	if *watchFlag {
		cfg.Watch = true
	}

	raw, path, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "stree: %v\n", err)
		os.Exit(1)
	}

	ids := model.UUIDGenerator{}
	forest, err := parse.Parse(raw, ids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stree: %v\n", err)
		os.Exit(1)
	}

	if *printMode != "" {
		if err := runPrint(*printMode, forest, cfg.Indent); err != nil {
			fmt.Fprintf(os.Stderr, "stree: %v\n", err)
			os.Exit(1)
		}
		return
	}

	m := ui.NewModel(forest, path, ids, cfg)

	if cfg.Watch && path != "" {
		w, err := watcher.New(path, watcher.WithOnError(func(err error) {
			debug.Log("watch: %v", err)
		}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		} else if err := w.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		} else {
			defer w.Stop()
			m = m.WithChanges(w.Changed())
		}
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if path == "" {
		// Input came over stdin; the TUI still needs the terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "stree: %v\n", err)
		os.Exit(1)
	}
}

// readInput returns the raw document and the file path it came from (empty
// for stdin). With no argument and an interactive terminal there is nothing
// to read, which is an error rather than a hang.
func readInput(path string) (string, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return string(data), path, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", fmt.Errorf("no input: pass a file or pipe a structure on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "", nil
}

// runPrint renders the forest to stdout in the requested format.
func runPrint(mode string, forest []*model.Node, indent int) error {
	switch mode {
	case "ascii":
		fmt.Print(render.ASCII(forest))
	case "markdown", "md":
		fmt.Print(render.Markdown(forest, indent))
	case "json":
		data, err := render.JSON(forest)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown print mode %q (want ascii, markdown, or json)", mode)
	}
	return nil
}
