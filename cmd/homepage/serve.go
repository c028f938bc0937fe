package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/homepage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		app := homepage.New(cfg, homepage.DefaultViews())
		return app.Start()
	},
}
