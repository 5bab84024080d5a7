package cli

import "fmt"

type DeleteCmd struct {
	Task string `arg:"" help:"Habit id or name."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	i, err := FindTask(tasks, c.Task)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	content := tasks[i].Configuration.Content
	// Deleting removes the whole aggregate; no orphan instances remain.
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := ctx.Store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", content)
	return nil
}
