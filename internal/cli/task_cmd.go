package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due, priority, category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{
				Title:    args[0],
				Priority: domain.Priority(priority),
				Category: category,
			}
			if due != "" {
				d, err := time.ParseInLocation(domain.DateLayout, due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				task.DueDate = &d
			}
			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}
			fmt.Printf("Created task %s\n", formatter.Bold(task.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: high, medium, low")
	cmd.Flags().StringVar(&category, "category", "", "Free-form category label")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No tasks."))
				return nil
			}
			for _, t := range tasks {
				mark := "[ ]"
				if t.Completed {
					mark = formatter.StyleGreen.Render("[x]")
				}
				line := fmt.Sprintf("%s %s", mark, t.Title)
				if t.DueDate != nil {
					line += formatter.Dim(" due " + domain.DateString(*t.DueDate))
				}
				if t.Priority == domain.PriorityHigh {
					line += " " + formatter.StyleRed.Render("!")
				}
				fmt.Printf("%s  %s\n", formatter.Dim(shortID(t.ID)), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Tasks.Toggle(ctx, id)
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Tasks.Delete(ctx, id)
		},
	}
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID(ids, input, "task")
}
