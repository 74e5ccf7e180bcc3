package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments",
	Short: "Manage project attachments",
}

var attProjectID string

var attachmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the attachments of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProject(); err != nil {
			return err
		}
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		atts, err := api.ListAttachments(cmd.Context(), attProjectID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE")
		for _, a := range atts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.ContentType, humanize.Bytes(uint64(a.Size)))
		}
		return w.Flush()
	},
}

var attachmentsAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Register a file as a project attachment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProject(); err != nil {
			return err
		}
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		a, err := api.CreateAttachment(cmd.Context(), models.Attachment{
			ProjectID:   attProjectID,
			Name:        filepath.Base(args[0]),
			ContentType: mime.TypeByExtension(filepath.Ext(args[0])),
			Size:        info.Size(),
		})
		if err != nil {
			return err
		}
		color.Green("registered %s (%s)", a.ID, a.Name)
		if a.URL != "" {
			fmt.Printf("upload content to: %s\n", a.URL)
		}
		return nil
	},
}

var attachmentsRemoveCmd = &cobra.Command{
	Use:   "remove <attachment-id>",
	Short: "Remove an attachment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := api.DeleteAttachment(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Yellow("removed %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)
	attachmentsCmd.AddCommand(attachmentsListCmd, attachmentsAddCmd, attachmentsRemoveCmd)

	attachmentsCmd.PersistentFlags().StringVarP(&attProjectID, "project", "p", "", "project id")
}

func requireProject() error {
	if attProjectID == "" {
		return fmt.Errorf("--project is required")
	}
	return nil
}
