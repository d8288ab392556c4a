package command

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"webconsole/contract"
	"webconsole/domain"
)

var (
	headerColor = domain.RGB(0, 175, 255)
	tableColor  = domain.RGB(10, 255, 96)
)

// ConnectionSource lists the connections of a console.
type ConnectionSource interface {
	Connections() iter.Seq[domain.Connection]
}

// Help lists the commands registered in r, sorted by name.
func Help(r *Registry) contract.CommandHandler {
	return contract.CommandHandlerFunc(func(cmd domain.Command) error {
		names := slices.Sorted(r.Commands())
		content, err := domain.NewMessageContent(
			domain.NewSnippet("Available commands: ", domain.WithBold(true), domain.WithColor(headerColor)),
			domain.NewSnippet(strings.Join(names, ", ")),
		)
		if err != nil {
			return err
		}
		return cmd.RespondContent(content)
	})
}

// Echo replies with the arguments joined by a single space.
func Echo() contract.CommandHandler {
	return contract.CommandHandlerFunc(func(cmd domain.Command) error {
		return cmd.Respond(strings.Join(cmd.Args(), " "))
	})
}

// Who replies with a table of the live connections, sorted by remote
// address. The row of the asking connection is marked with a star.
func Who(source ConnectionSource) contract.CommandHandler {
	return contract.CommandHandlerFunc(func(cmd domain.Command) error {
		self := cmd.Source().Connection()

		var rows [][]string
		for conn := range source.Connections() {
			marker := ""
			if self != nil && conn.ID() == self.ID() {
				marker = "*"
			}
			rows = append(rows, []string{marker, conn.ID(), conn.RemoteAddress()})
		}
		slices.SortFunc(rows, func(a, b []string) int { return strings.Compare(a[2], b[2]) })

		var b strings.Builder
		table := tablewriter.NewWriter(&b)
		table.SetHeader([]string{"", "ID", "Remote address"})
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetTablePadding("  ")
		table.SetNoWhiteSpace(true)
		table.AppendBulk(rows)
		table.Render()

		content, err := domain.NewMessageContent(
			domain.NewSnippet(countLine(len(rows)), domain.WithBold(true), domain.WithColor(headerColor)),
			domain.NewSnippet(b.String(), domain.WithColor(tableColor)),
		)
		if err != nil {
			return err
		}
		return cmd.RespondContent(content)
	})
}

func countLine(n int) string {
	if n == 1 {
		return "1 connection\n"
	}
	return strconv.Itoa(n) + " connections\n"
}

// RegisterBuiltins puts help, echo and who into r.
func RegisterBuiltins(r *Registry, source ConnectionSource) error {
	builtins := map[string]contract.CommandHandler{
		"help": Help(r),
		"echo": Echo(),
		"who":  Who(source),
	}
	for name, handler := range builtins {
		if err := r.Put(name, handler); err != nil {
			return err
		}
	}
	return nil
}
