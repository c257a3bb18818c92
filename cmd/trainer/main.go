package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"jinryoku-trainer/internal/coach"
	"jinryoku-trainer/internal/config"
	"jinryoku-trainer/internal/history"
	"jinryoku-trainer/internal/llm"
	"jinryoku-trainer/internal/prompts"
	"jinryoku-trainer/internal/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	st, err := store.NewFileStore(cfg.SubmissionsDir)
	if err != nil {
		log.Fatalf("failed to init submission store: %v", err)
	}
	browser := history.NewBrowser(st)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		runCmd(cfg, st, os.Args[2:])
	case "history":
		historyCmd(browser, os.Args[2:])
	case "show":
		showCmd(browser, os.Args[2:])
	case "export":
		exportCmd(browser, os.Args[2:])
	case "rubric":
		fmt.Println(prompts.RubricTemplate())
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: trainer <command> [flags]

commands:
  run      -module <%s> [-theme <text>] [-text <text>]   generate feedback and save (text read from stdin when -text is empty)
  history  [-limit N]                                    list saved submissions, newest first
  show     <path>                                        print one saved submission
  export   <path> [-out <file>]                          write one submission as a standalone JSON file
  rubric                                                 print the common scoring rubric
`, strings.Join(prompts.ModuleNames, "|"))
}

func runCmd(cfg *config.Config, st store.Store, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	module := fs.String("module", "", "training module")
	theme := fs.String("theme", "", "theme or conditions (optional)")
	text := fs.String("text", "", "submission text; read from stdin when empty")
	_ = fs.Parse(args)

	if *module == "" {
		log.Fatalf("run: -module is required (one of %s)", strings.Join(prompts.ModuleNames, ", "))
	}
	userText := *text
	if userText == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read submission from stdin: %v", err)
		}
		userText = string(data)
	}
	if strings.TrimSpace(userText) == "" {
		log.Fatalf("submission text is empty")
	}

	factory := &llm.Factory{
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		OpenAIBaseURL:    cfg.OpenAIBaseURL,
		Temperature:      cfg.Temperature,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(cfg.LLMProvider, cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	res, err := coach.New(client, st).Run(context.Background(), *module, *theme, userText)
	if err != nil {
		log.Fatalf("training run failed: %v", err)
	}
	fmt.Println(res.Feedback)
	fmt.Fprintf(os.Stderr, "saved: %s\n", res.SavedPath)
}

func historyCmd(browser *history.Browser, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 50, "max entries")
	_ = fs.Parse(args)

	entries, err := browser.Refresh(*limit)
	if err != nil {
		log.Fatalf("failed to list history: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("no saved submissions yet")
		return
	}
	for _, e := range entries {
		if e.Err != nil {
			fmt.Printf("%s\t(unreadable: %v)\n", e.Label, e.Err)
			continue
		}
		fmt.Println(e.Label)
	}
}

func showCmd(browser *history.Browser, args []string) {
	if len(args) < 1 {
		log.Fatalf("show: path argument required")
	}
	sub, err := browser.Preview(args[0])
	if err != nil {
		log.Fatalf("failed to load submission: %v", err)
	}
	fmt.Printf("module: %s / timestamp: %s\n\n", sub.Module, sub.Timestamp)
	fmt.Printf("--- 受講者入力 ---\n%s\n\n", sub.UserText)
	fmt.Printf("--- AI出力 ---\n%s\n", sub.AIText)
}

func exportCmd(browser *history.Browser, args []string) {
	if len(args) < 1 {
		log.Fatalf("export: path argument required")
	}
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output file; defaults to the record's own name")
	_ = fs.Parse(args[1:])

	name, data, err := browser.Export(args[0])
	if err != nil {
		log.Fatalf("failed to export submission: %v", err)
	}
	dest := *out
	if dest == "" {
		dest = name
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		log.Fatalf("failed to write export: %v", err)
	}
	fmt.Fprintf(os.Stderr, "exported: %s\n", dest)
}
