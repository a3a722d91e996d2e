package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"gopkg.in/natefinch/lumberjack.v2"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/segment"
	"github.com/BeatGlow/segment/internal/httpapi"
	"github.com/BeatGlow/segment/preview"
)

type lampTester interface {
	LampTest(ctx context.Context, clock clockwork.Clock, duration time.Duration) error
}

func main() {
	variantFlag := flag.String("variant", "radtcas", "Display variant (radtcas or rudder)")
	csPinFlag := flag.String("cs", segment.DefaultHT1621Config.CS, "Chip select GPIO pin")
	clkPinFlag := flag.String("clk", segment.DefaultHT1621Config.CLK, "Write clock GPIO pin (WR)")
	dataPinFlag := flag.String("data", segment.DefaultHT1621Config.Data, "Data GPIO pin")
	simFlag := flag.Bool("sim", false, "Use a simulated controller")
	httpFlag := flag.String("http", "", "Serve the HTTP API on this address")
	logFlag := flag.String("log", "", "Log to this file, rotated")
	lampFlag := flag.Duration("lamp-test", 0, "Show the lamp test pattern for this long at startup")
	pngFlag := flag.String("png", "", "Write a preview image to this file after every update")
	flag.Parse()

	if *logFlag != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFlag,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	var (
		conn segment.Conn
		err  error
	)
	if *simFlag {
		conn = segment.OpenSimulated(0)
	} else {
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		if conn, err = segment.OpenHT1621(&segment.HT1621Config{
			CS:   *csPinFlag,
			CLK:  *clkPinFlag,
			Data: *dataPinFlag,
		}); err != nil {
			fatal(err)
		}
	}
	log.Printf("using connection: %s", conn)

	var output segment.Display
	switch variant := strings.ToLower(*variantFlag); variant {
	case "radtcas", "radio", "tcas":
		output, err = segment.NewRadTCAS(conn)
	case "rudder":
		output, err = segment.NewRudder(conn)
	default:
		err = fmt.Errorf("unsupported variant %q", variant)
	}
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer output.Close()
	log.Printf("using driver: %s", output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *lampFlag > 0 {
		if err = output.(lampTester).LampTest(ctx, clockwork.NewRealClock(), *lampFlag); err != nil {
			_ = output.Close()
			fatal(err)
		}
	}

	// stdin and HTTP requests share the handler, which serializes display access
	api := httpapi.New(output, *variantFlag)
	if *httpFlag != "" {
		srv := &http.Server{
			Addr:    *httpFlag,
			Handler: api.Router(),
		}
		go func() {
			log.Printf("serving HTTP API on %s", *httpFlag)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Print(err)
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	// id,value lines on stdin, as sent by the host
	lines := make(chan string)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(os.Stdin)
		for s.Scan() {
			lines <- s.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if err = handle(api, line); err != nil {
				log.Printf("%q: %v", line, err)
				continue
			}
			if *pngFlag != "" {
				if err = writePNG(*pngFlag, api.Patterns(), *variantFlag); err != nil {
					log.Print(err)
				}
			}
		}
	}
}

func handle(api *httpapi.Handler, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	id, raw, _ := strings.Cut(line, ",")
	messageID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 16)
	if err != nil {
		return fmt.Errorf("invalid message id: %w", err)
	}
	if err = api.Set(int16(messageID), raw); err != nil {
		return err
	}
	log.Printf("message %d %q\n%s", messageID, raw, preview.Text(api.Patterns()))
	return nil
}

func writePNG(name string, patterns []segment.Pattern, caption string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, preview.Render(patterns, caption)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
