package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stackshop/internal/ui/coordinator"
	"stackshop/internal/ui/state"
)

// Executor turns coordinator effects into commands
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, catalog Catalog, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Catalog: catalog,
			Timeout: timeout,
		},
	}
}

// Execute creates and executes the command for one effect
func (e *Executor) Execute(effect coordinator.Effect) tea.Cmd {
	var cmd Command
	switch eff := effect.(type) {
	case coordinator.FetchCategories:
		cmd = NewFetchCategoriesCommand(e.ctx)
	case coordinator.FetchSubCategories:
		cmd = NewFetchSubCategoriesCommand(e.ctx, eff.Category)
	case coordinator.FetchProducts:
		cmd = NewFetchProductsCommand(e.ctx, eff.Seq, eff.Query)
	case coordinator.FetchProduct:
		cmd = NewFetchProductCommand(e.ctx, eff.SKU)
	default:
		return nil
	}
	return cmd.Execute()
}

// ExecuteAll executes every effect and batches the resulting commands
func (e *Executor) ExecuteAll(effects []coordinator.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		if cmd := e.Execute(effect); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
