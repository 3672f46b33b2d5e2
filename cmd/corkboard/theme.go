package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awexler/corkboard/pkg/prefs"
)

var themeFile string

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:       "theme [day|night|toggle]",
	Short:     "Show or change the board theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{prefs.ThemeDay, prefs.ThemeNight, "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		path := themeFile
		if path == "" {
			var err error
			path, err = prefs.DefaultPath()
			if err != nil {
				fatal("Failed to resolve theme path", err)
			}
		}
		store := prefs.NewStore(path)

		if len(args) == 0 {
			fmt.Println(store.Theme())
			return
		}

		switch args[0] {
		case "toggle":
			theme, err := store.Toggle()
			if err != nil {
				fatal("Failed to toggle theme", err)
			}
			fmt.Println(theme)
		default:
			if err := store.SetTheme(args[0]); err != nil {
				fatal("Failed to set theme", err)
			}
			fmt.Println(args[0])
		}
	},
}

func init() {
	themeCmd.Flags().StringVar(&themeFile, "file", "", "Override the theme preference file")
	rootCmd.AddCommand(themeCmd)
}
