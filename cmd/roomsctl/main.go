package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/client"
	"github.com/cwrk-planet/rooms-api/internal/export"
	"github.com/cwrk-planet/rooms-api/pkg/logger"
)

func main() {
	var (
		addr    = flag.String("addr", "http://localhost:8000", "rooms-api base URL")
		format  = flag.String("format", "table", "output format: table|json|xlsx")
		out     = flag.String("o", "", "output file (default stdout; required for xlsx)")
		timeout = flag.Duration("timeout", 10*time.Second, "request timeout")
		retries = flag.Int("retries", 2, "retries on 5xx / network errors")
	)
	flag.Parse()

	logger.Init(logger.Config{
		Service: "roomsctl",
		Env:     logger.EnvDev,
		Backend: logger.BackendStd,
		Output:  os.Stderr,
	})

	if err := run(*addr, *format, *out, *timeout, *retries); err != nil {
		slog.Error("roomsctl failed", "err", err)
		os.Exit(1)
	}
}

func run(addr, format, out string, timeout time.Duration, retries int) error {
	if format == "xlsx" && out == "" {
		return fmt.Errorf("-o is required for xlsx output")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rooms, err := client.New(client.Options{BaseURL: addr, Timeout: timeout, RetryCount: retries}).ListRooms(ctx)
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "xlsx":
		err = export.WriteRooms(w, rooms)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(rooms)
	case "table":
		err = writeTable(w, rooms)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	slog.Info("rooms fetched", "count", len(rooms), "format", format)
	return nil
}

func writeTable(w io.Writer, rooms []client.Room) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tHOST\tGUEST PAUSE\tVOTES\tCREATED")
	for _, rm := range rooms {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			rm.ID, rm.Code, rm.Host, strconv.FormatBool(rm.GuestCanPause), rm.VotesToSkip,
			rm.CreatedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}
