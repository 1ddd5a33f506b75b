package main

import (
	"github.com/Cult-of-sam/Bookmark-Manager/internal/dispatch"
	"github.com/spf13/cobra"
)

var queryName string

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryName, "name", "n", "", "The name of the bookmark to search for")
	_ = queryCmd.MarkFlagRequired("name")
}

var queryCmd = &cobra.Command{
	Use:   "query --name <NAME>",
	Short: "Get the value of an existing bookmark",
	Long: `Print a bookmark as

  Bookmark { name: "<name>", offset: <offset> }

Nothing is printed if no bookmark has the given name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, dispatch.Request{Op: dispatch.OpQuery, Name: queryName})
	},
}
