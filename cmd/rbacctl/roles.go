package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type roleList struct {
	Version uint64 `json:"version"`
	Items   []role `json:"items"`
}

func newRolesCmd(cl *client) *cobra.Command {
	cmd := &cobra.Command{Use: "roles", Short: "List, add and edit roles"}
	cmd.AddCommand(rolesListCmd(cl), rolesAddCmd(cl), rolesEditCmd(cl))
	return cmd
}

func rolesListCmd(cl *client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var list roleList
			if err := cl.do(cmd.Context(), http.MethodGet, "/v1/admin/roles", nil, &list); err != nil {
				return err
			}
			if cl.OutFormat == "json" {
				return cl.printJSON(list)
			}
			tw := tabwriter.NewWriter(cl.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPERMISSIONS")
			for _, r := range list.Items {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Name, strings.Join(r.Permissions, ", "))
			}
			return tw.Flush()
		},
	}
}

func rolesAddCmd(cl *client) *cobra.Command {
	var in role
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var created role
			if err := cl.do(cmd.Context(), http.MethodPost, "/v1/admin/roles", in, &created); err != nil {
				return err
			}
			return printRole(cl, created)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "role name")
	cmd.Flags().StringArrayVar(&in.Permissions, "perm", nil, "permission label, repeatable and order-preserving")
	return cmd
}

func rolesEditCmd(cl *client) *cobra.Command {
	var patch role
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a role; --perm replaces the whole permission list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			path := "/v1/admin/roles/" + strconv.FormatInt(id, 10)

			var cur role
			if err := cl.do(cmd.Context(), http.MethodGet, path, nil, &cur); err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				cur.Name = patch.Name
			}
			if cmd.Flags().Changed("perm") {
				cur.Permissions = patch.Permissions
			}

			var updated role
			if err := cl.do(cmd.Context(), http.MethodPut, path, cur, &updated); err != nil {
				return err
			}
			return printRole(cl, updated)
		},
	}
	cmd.Flags().StringVar(&patch.Name, "name", "", "role name")
	cmd.Flags().StringArrayVar(&patch.Permissions, "perm", nil, "permission label, repeatable")
	return cmd
}

func printRole(cl *client, r role) error {
	if cl.OutFormat == "json" {
		return cl.printJSON(r)
	}
	_, err := fmt.Fprintf(cl.out, "%d\t%s\t%s\n", r.ID, r.Name, strings.Join(r.Permissions, ", "))
	return err
}
