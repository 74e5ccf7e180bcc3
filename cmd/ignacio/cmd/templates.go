package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/session"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage prompt templates",
}

var (
	templatePrompt      string
	templateName        string
	templateDescription string
)

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.TemplateList()
		if err := list.Refresh(cmd.Context()); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, t := range list.Templates() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.Description)
		}
		return w.Flush()
	},
}

var templatesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a prompt template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.TemplateList()
		t, err := list.Create(cmd.Context(), models.Template{
			Name:        args[0],
			Prompt:      templatePrompt,
			Description: templateDescription,
		})
		if err != nil {
			return err
		}
		color.Green("created %s (%s)", t.ID, t.Name)
		return nil
	},
}

var templatesUpdateCmd = &cobra.Command{
	Use:   "update <template-id>",
	Short: "Update a prompt template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		patch := models.TemplatePatch{}
		if cmd.Flags().Changed("name") {
			patch.Name = &templateName
		}
		if cmd.Flags().Changed("prompt") {
			patch.Prompt = &templatePrompt
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &templateDescription
		}
		list := session.NewTemplateList(api, nil)
		t, err := list.Update(cmd.Context(), args[0], patch)
		if err != nil {
			return err
		}
		color.Green("updated %s", t.ID)
		return nil
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a prompt template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.TemplateList()
		if err := list.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Yellow("deleted %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd, templatesCreateCmd, templatesUpdateCmd, templatesDeleteCmd)

	templatesCreateCmd.Flags().StringVar(&templatePrompt, "prompt", "", "template prompt text")
	templatesCreateCmd.Flags().StringVar(&templateDescription, "description", "", "template description")
	_ = templatesCreateCmd.MarkFlagRequired("prompt")

	templatesUpdateCmd.Flags().StringVar(&templateName, "name", "", "new template name")
	templatesUpdateCmd.Flags().StringVar(&templatePrompt, "prompt", "", "new prompt text")
	templatesUpdateCmd.Flags().StringVar(&templateDescription, "description", "", "new description")
}
