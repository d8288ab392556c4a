package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mama165/sdk-go/logs"

	"webconsole/command"
	"webconsole/contract"
	"webconsole/domain"
	"webconsole/internal"
	"webconsole/observability"
	"webconsole/runtime"
	"webconsole/transport/websocket"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Console terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the console and blocks until SIGINT or SIGTERM.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Console over websocket
	metrics := observability.NewMetrics()
	module := websocket.NewModule(log, config.Module(), websocket.WithMetricsHandler(metrics.Handler()))
	console, err := runtime.NewConsole(log, module)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		if err := console.Close(); err != nil {
			log.Error("Closing console failed", "error", err)
		}
	}()

	if err := metrics.Attach(console); err != nil {
		return exitRuntime, err
	}

	// 3. Commands
	commands := command.NewRegistry(log, command.WithObserver(metrics))
	if err := registerCommands(commands, console, metrics); err != nil {
		return exitRuntime, err
	}
	if _, err := console.AddMessageListener(commands); err != nil {
		return exitRuntime, err
	}
	if _, err := console.AddConnectionOpenedListener(contract.ConnectionListenerFunc(welcome)); err != nil {
		return exitRuntime, err
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.Start(); err != nil {
		return exitRuntime, err
	}
	log.Info("Console available", "url", module.HTTPURL(), "websocket", module.WebsocketURL())

	<-ctx.Done()
	log.Info("Shutting down gracefully...")
	return exitOK, nil
}

func registerCommands(commands *command.Registry, console *runtime.Console, metrics *observability.Metrics) error {
	if err := command.RegisterBuiltins(commands, console); err != nil {
		return err
	}
	handlers := map[string]contract.CommandHandler{
		"greet":     contract.CommandHandlerFunc(greet),
		"broadcast": broadcast(console),
		"stats":     stats(metrics),
	}
	for name, handler := range handlers {
		if err := commands.Put(name, handler); err != nil {
			return err
		}
	}
	return nil
}

func welcome(conn domain.Connection) error {
	content, err := domain.NewMessageContent(
		domain.NewSnippet("Welcome ", domain.WithBold(true)),
		domain.NewSnippet(conn.RemoteAddress(), domain.WithColor(domain.RGB(0, 243, 255))),
		domain.NewSnippet(", type "),
		domain.NewSnippet("help", domain.WithItalic(true)),
		domain.NewSnippet(" to list the commands."),
	)
	if err != nil {
		return err
	}
	return conn.Send(content)
}

func greet(cmd domain.Command) error {
	name, err := cmd.Arg(0)
	if err != nil {
		return cmd.Respond("Usage: greet <name>")
	}
	return cmd.Respond("Hello, " + name)
}

func broadcast(console *runtime.Console) contract.CommandHandler {
	return contract.CommandHandlerFunc(func(cmd domain.Command) error {
		if cmd.ArgCount() == 0 {
			return cmd.Respond("Usage: broadcast <text>")
		}
		content, err := domain.NewMessageContent(
			domain.NewSnippet("["+cmd.Source().Connection().RemoteAddress()+"] ",
				domain.WithColor(domain.RGB(188, 19, 254))),
			domain.NewSnippet(strings.Join(cmd.Args(), " ")),
		)
		if err != nil {
			return err
		}
		console.Logger().Debug("Broadcast", "recipients", console.Broadcast(content))
		return nil
	})
}

func stats(metrics *observability.Metrics) contract.CommandHandler {
	return contract.CommandHandlerFunc(func(cmd domain.Command) error {
		s := metrics.GetLatest()
		return cmd.Respond(fmt.Sprintf(
			"messages=%d opened=%d closed=%d matched=%d unknown=%d failures=%d mem=%dMB gc=%d rss=%dMB cpu=%.1f%% status=%s",
			s.MessagesReceived, s.ConnectionsOpened, s.ConnectionsClosed,
			s.CommandsMatched, s.CommandsUnknown, s.HandlerFailures, s.AllocMemMb, s.NumGC,
			s.RSSBytes/1024/1024, s.CPUPercent, s.PidStatus))
	})
}
