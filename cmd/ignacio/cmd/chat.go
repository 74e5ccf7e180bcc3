package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/session"
)

var (
	roleUser      = color.New(color.FgCyan, color.Bold)
	roleAssistant = color.New(color.FgGreen, color.Bold)
	roleSystem    = color.New(color.FgMagenta)
	pendingMark   = color.New(color.FgYellow)
	faint         = color.New(color.Faint)
)

var chatCmd = &cobra.Command{
	Use:   "chat <conversation-id>",
	Short: "Open a chat session on a conversation",
	Long: `chat opens a line-based session on one conversation. Sent messages
appear immediately with a pending marker and are replaced by the
confirmed record (plus the assistant's reply) once the backend answers.

Session commands:
  /refresh              refetch the conversation from the backend
  /edit <id> <body>     edit one of your messages
  /delete <id>          delete one of your messages
  /quit                 leave the session`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		conv, err := api.GetConversation(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		view := session.NewConversationView(api, conv.ID)
		if err := view.Refresh(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("chatting in %s", conv.ID)
		if conv.Title != "" {
			fmt.Printf(" (%s)", conv.Title)
		}
		fmt.Println()
		renderLog(view.Messages())

		scanner := bufio.NewScanner(os.Stdin)
		prompt := func() { fmt.Print("> ") }
		for prompt(); scanner.Scan(); prompt() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "/") {
				if quit := runChatCommand(cmd, view, line); quit {
					return nil
				}
				continue
			}
			renderMessage(provisionalEcho(conv.ID, line))
			if _, err := view.Send(cmd.Context(), line); err != nil {
				color.Red("send failed: %v", err)
				continue
			}
			renderLatest(view.Messages(), 2)
		}
		return scanner.Err()
	},
}

// provisionalEcho mirrors what the view projects while a send is in
// flight, so the user sees their line echoed with the pending marker.
func provisionalEcho(convID, body string) models.Message {
	return models.Message{ConversationID: convID, Role: models.RoleUser, Body: body, Pending: true}
}

func runChatCommand(cmd *cobra.Command, view *session.ConversationView, line string) (quit bool) {
	parts := strings.SplitN(line, " ", 3)
	switch parts[0] {
	case "/quit", "/q":
		return true
	case "/refresh":
		if err := view.Refresh(cmd.Context()); err != nil {
			color.Red("refresh failed: %v", err)
			return false
		}
		renderLog(view.Messages())
	case "/edit":
		if len(parts) < 3 {
			color.Red("usage: /edit <message-id> <new body>")
			return false
		}
		body := parts[2]
		if _, err := view.Edit(cmd.Context(), parts[1], models.MessagePatch{Body: &body}); err != nil {
			color.Red("edit failed: %v", err)
			return false
		}
		renderLog(view.Messages())
	case "/delete":
		if len(parts) < 2 {
			color.Red("usage: /delete <message-id>")
			return false
		}
		if err := view.Delete(cmd.Context(), parts[1]); err != nil {
			color.Red("delete failed: %v", err)
			return false
		}
		renderLog(view.Messages())
	default:
		color.Red("unknown command %s", parts[0])
	}
	return false
}

func renderLog(msgs []models.Message) {
	for _, m := range msgs {
		renderMessage(m)
	}
}

// renderLatest prints the tail of the log (the just-confirmed message and
// the assistant reply) without re-printing the whole history.
func renderLatest(msgs []models.Message, n int) {
	if len(msgs) < n {
		n = len(msgs)
	}
	for _, m := range msgs[len(msgs)-n:] {
		renderMessage(m)
	}
}

func renderMessage(m models.Message) {
	var c *color.Color
	switch m.Role {
	case models.RoleAssistant:
		c = roleAssistant
	case models.RoleSystem:
		c = roleSystem
	default:
		c = roleUser
	}
	c.Printf("%s", m.Role)
	if m.Pending {
		pendingMark.Print(" [pending]")
	} else if m.ID != "" {
		faint.Printf(" (%s)", m.ID)
	}
	fmt.Printf(": %s\n", m.Body)
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
