package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/dtchiong/order-printer/internal/domain/doordash"
	"github.com/dtchiong/order-printer/internal/domain/grubhub"
	"github.com/dtchiong/order-printer/internal/domain/menu"
	"github.com/dtchiong/order-printer/internal/domain/order"
	"github.com/dtchiong/order-printer/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "orderparse:", err)
		os.Exit(1)
	}
}

func run() error {
	format := flag.String("format", "html", "input format: html (GrubHub confirmation) or text (DoorDash extracted lines)")
	inPath := flag.String("in", "-", "input file, or - for stdin")
	messageID := flag.String("message-id", "", "message id to stamp on the order (default: random)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if *messageID == "" {
		*messageID = uuid.NewString()
	}

	input, err := readInput(*inPath)
	if err != nil {
		return err
	}

	ghMenu, ddMenu, err := loadMenus(cfg, logger)
	if err != nil {
		return err
	}

	received := time.Now()

	var (
		o     *order.Order
		warns order.Warnings
	)
	switch *format {
	case "html":
		doc, err := html.Parse(strings.NewReader(input))
		if err != nil {
			return fmt.Errorf("parsing html: %w", err)
		}
		parser := grubhub.NewParser(ghMenu, logger)
		o, warns, err = parser.ParseOrder(doc, received, *messageID)
		if err != nil {
			return err
		}
	case "text":
		lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
		if cfg.Debug.PrintLines {
			if err := os.MkdirAll(cfg.Debug.DumpDir, 0o755); err != nil {
				return err
			}
			if err := doordash.DumpLines(cfg.Debug.DumpDir, *messageID, lines); err != nil {
				logger.Warn("dumping lines failed", "error", err)
			}
		}
		parser := doordash.NewParser(ddMenu, logger)
		o, warns = parser.ParseOrder(lines, received, *messageID)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	for _, w := range warns {
		logger.Warn("parse warning", "field", w.Field, "message", w.Message, "raw", w.Raw, "line", w.Line)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// loadMenus returns the embedded menus unless a workbook override is
// configured.
func loadMenus(cfg *config.Config, logger *slog.Logger) (*menu.Menu, *menu.Menu, error) {
	gh := menu.GrubHub()
	dd := menu.DoorDash()

	if path := cfg.Menu.GrubHubWorkbook; path != "" {
		m, err := loadWorkbook(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading grubhub menu workbook: %w", err)
		}
		logger.Info("loaded menu override", "service", "grubhub", "path", path)
		gh = m
	}
	if path := cfg.Menu.DoorDashWorkbook; path != "" {
		m, err := loadWorkbook(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading doordash menu workbook: %w", err)
		}
		logger.Info("loaded menu override", "service", "doordash", "path", path)
		dd = m
	}
	return gh, dd, nil
}

func loadWorkbook(path string) (*menu.Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return menu.LoadWorkbook(f)
}
