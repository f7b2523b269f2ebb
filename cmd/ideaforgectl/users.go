package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	// create
	var userId, name, email, image string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userId == "" || name == "" || email == "" {
				return fmt.Errorf("--userId, --name and --email required")
			}
			payload := map[string]interface{}{"userId": userId, "name": name, "email": email}
			if image != "" {
				payload["image"] = image
			}
			data, err := doPostJSON("/api/users", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&userId, "userId", "u", "", "UserID (required)")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	createCmd.Flags().StringVarP(&email, "email", "e", "", "User email (required)")
	createCmd.Flags().StringVarP(&image, "image", "i", "", "Avatar URL")
	_ = createCmd.MarkFlagRequired("userId")
	usersCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/users/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	usersCmd.AddCommand(getCmd)

	rootCmd.AddCommand(usersCmd)
}
