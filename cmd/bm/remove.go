package main

import (
	"github.com/Cult-of-sam/Bookmark-Manager/internal/dispatch"
	"github.com/spf13/cobra"
)

var removeName string

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().StringVarP(&removeName, "name", "n", "", "The name of the bookmark to remove")
	_ = removeCmd.MarkFlagRequired("name")
}

var removeCmd = &cobra.Command{
	Use:   "remove --name <NAME>",
	Short: "Remove an existing bookmark",
	Long: `Remove a bookmark and print it.

Nothing is printed, and the store file is left as it was, if no bookmark
has the given name. The store file must exist and be valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, dispatch.Request{Op: dispatch.OpRemove, Name: removeName})
	},
}
