package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var projectKind string
var projectDescription string

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.ProjectList()
		if err := list.Refresh(cmd.Context()); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tKIND\tDESCRIPTION")
		for _, p := range list.Projects() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Kind, p.Description)
		}
		return w.Flush()
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.ProjectList()
		p, err := list.Create(cmd.Context(), models.Project{
			Name:        args[0],
			Kind:        projectKind,
			Description: projectDescription,
		})
		if err != nil {
			return err
		}
		color.Green("created %s (%s)", p.ID, p.Name)
		return nil
	},
}

var projectsRenameCmd = &cobra.Command{
	Use:   "rename <project-id> <new-name>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.ProjectList()
		p, err := list.Rename(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		color.Green("renamed %s to %q", p.ID, p.Name)
		return nil
	},
}

var projectsArchiveCmd = &cobra.Command{
	Use:   "archive <project-id>",
	Short: "Archive a project (soft delete)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		list := ws.ProjectList()
		if err := list.Archive(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Yellow("archived %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd, projectsRenameCmd, projectsArchiveCmd)

	projectsCreateCmd.Flags().StringVar(&projectKind, "kind", "startup", "project kind: startup, ngo, foundation or internal")
	projectsCreateCmd.Flags().StringVar(&projectDescription, "description", "", "project description")
}
