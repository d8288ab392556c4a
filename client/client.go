package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"

	"webconsole/domain"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	URL      string `env:"CONSOLE_URL,default=ws://localhost:8080/ws"`
	LogLevel string `env:"LOG_LEVEL,required=true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run dials the console, prints every content it receives and sends each
// stdin line as a message.
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, config.URL, nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to console at %s: %w", config.URL, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = ws.Close()
	}()

	log.Info(fmt.Sprintf(">>> Connected to %s (Ctrl+C to quit)", config.URL))

	received := make(chan error, 1)
	go func() { received <- receive(ws, os.Stdout) }()

	lines := make(chan string)
	go scan(os.Stdin, lines)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case err := <-received:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("read error: %w", err)
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if err := ws.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				return exitRuntime, fmt.Errorf("write error: %w", err)
			}
		}
	}
}

func receive(ws *websocket.Conn, out io.Writer) error {
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return err
		}
		content, err := domain.FromJSON(data)
		if err != nil {
			fmt.Fprintf(out, "%s\n", data)
			continue
		}
		fmt.Fprintln(out, Render(content))
	}
}

func scan(in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}
