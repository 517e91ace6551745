package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/uznami/rwbin/codec"
	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/layout"
	"github.com/uznami/rwbin/wasmio"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to the binary file to inspect")
		layoutSpec  = flag.String("layout", "", "Field layout, or @path to read it from a file")
		orderName   = flag.String("order", "le", "Byte order: le, be or native")
		offsetStr   = flag.String("offset", "0", "Byte offset to start decoding at (decimal or 0x hex)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		logLevel    = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	if *file == "" || *layoutSpec == "" {
		fmt.Fprintln(os.Stderr, "Usage: rwbin -file <data.bin> -layout 'magic: u32, len: !u16, ...' [-order le|be] [-offset N]")
		fmt.Fprintln(os.Stderr, "       rwbin -file <data.bin> -layout @fields.layout -i  (interactive mode)")
		os.Exit(1)
	}

	logger, err := buildLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	codec.SetLogger(logger.Named("codec"))
	layout.SetLogger(logger.Named("layout"))
	wasmio.SetLogger(logger.Named("wasmio"))

	cfg, err := loadConfig(*file, *layoutSpec, *orderName, *offsetStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal on stdout")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// config is the resolved command line.
type config struct {
	order    endian.Order
	filename string
	layout   string
	data     []byte
	offset   int
}

func loadConfig(file, layoutSpec, orderName, offsetStr string) (*config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if path, ok := strings.CutPrefix(layoutSpec, "@"); ok {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		layoutSpec = string(text)
	}

	order, err := endian.Parse(orderName)
	if err != nil {
		return nil, err
	}

	offset, err := parseOffset(offsetStr, len(data))
	if err != nil {
		return nil, err
	}

	return &config{
		order:    order,
		filename: file,
		layout:   layoutSpec,
		data:     data,
		offset:   offset,
	}, nil
}

func parseOffset(s string, size int) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	if int(n) > size {
		return 0, fmt.Errorf("offset %d is past the end of a %d byte file", n, size)
	}
	return int(n), nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// decode parses the layout and decodes the data from the configured offset.
// Rows decoded before a failure are returned with the error.
func decode(layoutSpec string, data []byte, order endian.Order, offset int) ([]layout.Row, error) {
	l, err := layout.Parse(layoutSpec)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	values, err := l.Decode(codec.FromBytes(data[offset:], order))
	return layout.Flatten(values), err
}

func run(w io.Writer, cfg *config) error {
	rows, err := decode(cfg.layout, cfg.data, cfg.order, cfg.offset)
	for _, r := range rows {
		fmt.Fprintln(w, formatRow(r, cfg.offset))
	}
	return err
}

// formatRow renders a row as "offset size  name = text", indented by depth.
func formatRow(r layout.Row, base int) string {
	name := r.Name
	if name == "" {
		name = "-"
	}
	line := fmt.Sprintf("%08x %5d  %s%s", base+r.Offset, r.Size, strings.Repeat("  ", r.Depth), name)
	if r.Text != "" {
		line += " = " + r.Text
	}
	return line
}
