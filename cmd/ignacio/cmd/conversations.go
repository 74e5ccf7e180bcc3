package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"convs"},
	Short:   "Manage conversations inside a project",
}

var convProjectID string

var conversationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the conversations of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		convs, err := api.ListConversations(cmd.Context(), convProjectID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSLUG")
		for _, c := range convs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Title, c.Slug)
		}
		return w.Flush()
	},
}

var conversationsCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Open a new conversation in a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		c, err := api.CreateConversation(cmd.Context(), models.Conversation{
			ProjectID: convProjectID,
			Title:     args[0],
		})
		if err != nil {
			return err
		}
		color.Green("created %s (%s)", c.ID, c.Slug)
		fmt.Printf("start chatting with: ignacio chat %s\n", c.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(conversationsCmd)
	conversationsCmd.AddCommand(conversationsListCmd, conversationsCreateCmd)

	conversationsCmd.PersistentFlags().StringVarP(&convProjectID, "project", "p", "", "project id")
	_ = conversationsCmd.MarkPersistentFlagRequired("project")
}
