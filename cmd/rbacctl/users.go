package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type user struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
}

type userList struct {
	Version uint64 `json:"version"`
	Items   []user `json:"items"`
}

func newUsersCmd(cl *client) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "List, add, edit and delete users"}
	cmd.AddCommand(usersListCmd(cl), usersAddCmd(cl), usersEditCmd(cl), usersDeleteCmd(cl))
	return cmd
}

func usersListCmd(cl *client) *cobra.Command {
	var term string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users, optionally filtered by name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/v1/admin/users"
			if term != "" {
				path += "?q=" + url.QueryEscape(term)
			}
			var list userList
			if err := cl.do(cmd.Context(), http.MethodGet, path, nil, &list); err != nil {
				return err
			}
			if cl.OutFormat == "json" {
				return cl.printJSON(list)
			}
			tw := tabwriter.NewWriter(cl.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
			for _, u := range list.Items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&term, "q", "q", "", "case-insensitive substring of name or email")
	return cmd
}

func usersAddCmd(cl *client) *cobra.Command {
	var in user
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user (always created Active)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var created user
			body := map[string]string{"name": in.Name, "email": in.Email, "role": in.Role}
			if err := cl.do(cmd.Context(), http.MethodPost, "/v1/admin/users", body, &created); err != nil {
				return err
			}
			return printUser(cl, created)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Role, "role", "", "role name")
	return cmd
}

func usersEditCmd(cl *client) *cobra.Command {
	var patch user
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a user; omitted flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			path := "/v1/admin/users/" + strconv.FormatInt(id, 10)

			var cur user
			if err := cl.do(cmd.Context(), http.MethodGet, path, nil, &cur); err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("name") {
				cur.Name = patch.Name
			}
			if f.Changed("email") {
				cur.Email = patch.Email
			}
			if f.Changed("role") {
				cur.Role = patch.Role
			}
			if f.Changed("status") {
				cur.Status = patch.Status
			}

			var updated user
			if err := cl.do(cmd.Context(), http.MethodPut, path, cur, &updated); err != nil {
				return err
			}
			return printUser(cl, updated)
		},
	}
	cmd.Flags().StringVar(&patch.Name, "name", "", "display name")
	cmd.Flags().StringVar(&patch.Email, "email", "", "email address")
	cmd.Flags().StringVar(&patch.Role, "role", "", "role name")
	cmd.Flags().StringVar(&patch.Status, "status", "", "Active or Inactive")
	return cmd
}

func usersDeleteCmd(cl *client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := cl.do(cmd.Context(), http.MethodDelete, "/v1/admin/users/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
				return err
			}
			if cl.OutFormat == "json" {
				return cl.printJSON(map[string]any{"deleted": id})
			}
			fmt.Fprintf(cl.out, "deleted user %d\n", id)
			return nil
		},
	}
}

func printUser(cl *client, u user) error {
	if cl.OutFormat == "json" {
		return cl.printJSON(u)
	}
	_, err := fmt.Fprintf(cl.out, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
