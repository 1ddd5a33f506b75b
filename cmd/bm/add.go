package main

import (
	"github.com/Cult-of-sam/Bookmark-Manager/internal/dispatch"
	"github.com/spf13/cobra"
)

var addName string
var addOffset string

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "The name of the bookmark to add/update")
	addCmd.Flags().StringVarP(&addOffset, "offset", "o", "", "The time offset to save")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("offset")
}

var addCmd = &cobra.Command{
	Use:   "add --name <NAME> --offset <OFFSET>",
	Short: "Add a new bookmark",
	Long: `Add a bookmark, or update the offset of an existing one.

The store file is created if it does not exist. If its contents cannot be
parsed they are discarded and replaced by the new bookmark.

Examples:
  bm add --name chapter-3 --offset 1834.2
  bm -f ~/audiobook.marks add -n chapter-3 -o 1900`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	offset, err := dispatch.ParseOffset(addOffset)
	if err != nil {
		return err
	}
	return run(cmd, dispatch.Request{Op: dispatch.OpAdd, Name: addName, Offset: offset})
}
