package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/workcal/internal/hours"
	"github.com/sadopc/workcal/internal/prompt"
	"github.com/sadopc/workcal/internal/store"
	"github.com/sadopc/workcal/internal/tui"
	"github.com/sadopc/workcal/internal/workbook"
)

const appVersion = "0.1.0"

func main() {
	var file string

	root := &cobra.Command{
		Use:   "workcal",
		Short: "Log daily work hours into a styled Excel calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Printf("workcal v%s\n", appVersion)
				return nil
			}
			return runLog(file)
		},
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", store.DefaultFilename, "workbook path")
	root.Flags().Bool("version", false, "print version")

	root.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "Browse logged months in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(file)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runLog is the default flow: one interactive session logs (or corrects)
// a single day, then the whole workbook is rebuilt and saved.
func runLog(path string) error {
	sess, err := prompt.Run(time.Now())
	if err != nil {
		return err
	}
	if len(sess.Times) == 0 {
		fmt.Println("No time entries recorded.")
		return nil
	}

	worked := hours.Worked(sess.Times)
	extra := hours.Extra(worked, hours.StandardWorkday)

	st := store.Load(path)
	st.Merge(sess.Date, hours.Format(worked), hours.Format(extra))
	if err := workbook.Write(st, path); err != nil {
		return err
	}

	fmt.Println(prompt.Summary(sess.Date, worked, extra, path))
	return nil
}

func runView(path string) error {
	st := store.Load(path)
	p := tea.NewProgram(tui.New(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
