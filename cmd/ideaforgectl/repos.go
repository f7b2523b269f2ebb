package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	reposCmd := &cobra.Command{Use: "repos", Short: "Idea repository operations"}

	// create
	var name, description, visibility, category string
	var tags []string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an idea repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || description == "" {
				return fmt.Errorf("--name and --description required")
			}
			payload := map[string]interface{}{"name": name, "description": description}
			if visibility != "" {
				payload["visibility"] = visibility
			}
			if category != "" {
				payload["category"] = category
			}
			if len(tags) > 0 {
				payload["tags"] = tags
			}
			data, err := doPostJSON("/api/repos", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Repository name (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Idea description (required)")
	createCmd.Flags().StringVar(&visibility, "visibility", "", "public or private")
	createCmd.Flags().StringVar(&category, "category", "", "Category (defaults to general)")
	createCmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	reposCmd.AddCommand(createCmd)

	// list
	var owner, listVisibility, sort, order string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List idea repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/repos?"
			q := func(k, v string) {
				if v != "" {
					path += fmt.Sprintf("%s=%s&", k, v)
				}
			}
			q("userId", owner)
			q("visibility", listVisibility)
			q("sort", sort)
			q("order", order)
			data, err := doGet(path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&owner, "owner", "o", "", "Filter by owner user ID")
	listCmd.Flags().StringVar(&listVisibility, "visibility", "", "Filter by visibility")
	listCmd.Flags().StringVar(&sort, "sort", "", "Sort field (createdAt, starCount, ...)")
	listCmd.Flags().StringVar(&order, "order", "", "asc or desc")
	reposCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get REPO_ID",
		Short: "Get a repository by ID (increments its view count)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/repos/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	reposCmd.AddCommand(getCmd)

	// update
	var patchJSON string
	updateCmd := &cobra.Command{
		Use:   "update REPO_ID",
		Short: "Patch a repository (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(patchJSON), &payload); err != nil {
				return fmt.Errorf("--patch must be a JSON object: %w", err)
			}
			data, err := doPutJSON("/api/repos/"+args[0], payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&patchJSON, "patch", "p", "{}", "JSON object of fields to change")
	reposCmd.AddCommand(updateCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete REPO_ID",
		Short: "Delete a repository (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doDelete("/api/repos/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	reposCmd.AddCommand(deleteCmd)

	// star
	starCmd := &cobra.Command{
		Use:   "star REPO_ID",
		Short: "Toggle a star on a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON("/api/repos/"+args[0]+"/star", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	reposCmd.AddCommand(starCmd)

	// fork
	forkCmd := &cobra.Command{
		Use:   "fork REPO_ID",
		Short: "Fork a public repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON("/api/repos/"+args[0]+"/fork", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	reposCmd.AddCommand(forkCmd)

	rootCmd.AddCommand(reposCmd)
}
