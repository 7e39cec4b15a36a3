package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"stackshop/internal/config"
	"stackshop/internal/debounce"
	"stackshop/internal/ui/commands"
	"stackshop/internal/ui/coordinator"
	"stackshop/internal/ui/input"
	inputtypes "stackshop/internal/ui/input/types"
	"stackshop/internal/ui/services/events"
	"stackshop/internal/ui/services/navigation"
	"stackshop/internal/ui/state"
	"stackshop/internal/ui/viewmodels"
	"stackshop/internal/ui/views"
)

// How long a status bar message stays up
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    events.EventBus
	config *config.Config
	state  *state.AppState // UI-only state

	// UI-specific state not in AppState
	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	coordinator  *coordinator.Coordinator // filter/search state and the product views
	debouncer    *debounce.Debouncer      // search quiet period timer
	renderer     *views.Renderer          // view renderer
	viewModel    *viewmodels.ViewModel    // view model for rendering
	cmdExecutor  *commands.Executor       // turns coordinator effects into fetches
	inputHandler *input.Handler           // input handling
	pager        *PagerOps                // ov pager for help and product sheets

	send       func(tea.Msg) // program.Send once a program is attached
	initialSKU string        // product to open on start
	closed     bool
}

// NewModel creates a new UI model. A nil clock means the wall clock.
func NewModel(cfg *config.Config, catalog commands.Catalog, bus events.EventBus, clk clock.Clock) *Model {
	if bus == nil {
		bus = &events.NullBus{}
	}
	appState := state.NewAppState()
	debouncer := debounce.New(clk, cfg.DebounceWindow())
	coord := coordinator.NewCoordinator(bus, debouncer, cfg.Search.PageSize)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		coordinator:  coord,
		debouncer:    debouncer,
		renderer:     views.NewRenderer(),
		cmdExecutor:  commands.NewExecutor(appState, catalog, cfg.RequestTimeout()),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	m.viewModel = viewmodels.NewViewModel(appState, coord, m.inputHandler.GetTextInput())
	return m
}

// SetProgram sets the program reference for terminal management and starts forwarding
// search commits to it
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
	m.attach(p.Send)
}

// attach makes send the destination of search commits and of batched command results
func (m *Model) attach(send func(tea.Msg)) {
	if m.send != nil {
		return
	}
	m.send = send
	go m.forwardCommits(send)
}

// forwardCommits posts every debounce commit to the program until the debouncer stops
func (m *Model) forwardCommits(send func(tea.Msg)) {
	for {
		select {
		case c := <-m.debouncer.Commits():
			send(searchCommitMsg(c))
		case <-m.debouncer.Done():
			return
		}
	}
}

// detach keeps batched commands off the event loop. Bubble Tea evaluates the members of a
// BatchMsg inside its event loop, so once a program is attached a batch is fanned out onto
// goroutines here and each result is sent on its own.
func (m *Model) detach(cmd tea.Cmd) tea.Cmd {
	if cmd == nil || m.send == nil {
		return cmd
	}
	send := m.send
	return func() tea.Msg {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					go dispatch(send, c)
				}
			}
			return nil
		}
		return msg
	}
}

func dispatch(send func(tea.Msg), cmd tea.Cmd) {
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				go dispatch(send, c)
			}
		}
	default:
		send(msg)
	}
}

// OpenOnStart makes the detail view of sku the first screen
func (m *Model) OpenOnStart(sku string) {
	m.initialSKU = sku
}

// Coordinator exposes the filter/search coordinator
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// Close stops the debounce timer. Safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.coordinator.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.cmdExecutor.ExecuteAll(m.coordinator.Mount()),
		m.spinner.Tick,
	}
	if m.initialSKU != "" {
		m.inputHandler.ChangeMode(inputtypes.ModeDetail, "")
		cmds = append(cmds, m.cmdExecutor.ExecuteAll(m.coordinator.OpenProduct(m.initialSKU)))
	}
	return m.detach(tea.Batch(cmds...))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	return model, m.detach(cmd)
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.coordinator.SetViewportHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			m.handleHelpKey(msg)
			return m, nil
		}

		ctx := &input.ModelContext{Coordinator: m.coordinator}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink and the like go to the text input; everything else is ours
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// handleHelpKey scrolls or closes the help popup
func (m *Model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "up", "k":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "down", "j":
		m.state.HelpScrollOffset++
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchCommitMsg:
		effects := m.coordinator.CommitSearch(msg.Gen, msg.Value)
		return m, m.cmdExecutor.ExecuteAll(effects)

	case commands.ProductsLoadedMsg:
		m.state.EndRequest(state.RequestProducts)
		m.coordinator.HandleProducts(msg.Seq, msg.Products, msg.Err)
		return m, nil

	case commands.CategoriesLoadedMsg:
		m.state.EndRequest(state.RequestCategories)
		if message := m.coordinator.HandleCategories(msg.Categories, msg.Err); message != "" {
			return m, m.setStatus(message, true)
		}
		return m, nil

	case commands.SubCategoriesLoadedMsg:
		m.state.EndRequest(state.RequestSubCategories)
		if message := m.coordinator.HandleSubCategories(msg.Category, msg.SubCategories, msg.Err); message != "" {
			return m, m.setStatus(message, true)
		}
		return m, nil

	case commands.ProductLoadedMsg:
		m.state.EndRequest(state.RequestProduct)
		m.coordinator.HandleProduct(msg.SKU, msg.Product, msg.Err)
		return m, nil

	case spinner.TickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.state.InPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			log.Warnf("Help pager failed: %v, falling back to popup", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case sheetPagerMsg:
		if msg.err != nil {
			log.Warnf("Sheet pager failed for %s: %v", msg.sku, msg.err)
			return m, m.setStatus("Could not open product sheet", true)
		}
		return m, nil

	case copyMsg:
		if msg.err != nil {
			log.Warnf("Copy %s failed: %v", msg.what, msg.err)
			return m, m.setStatus("Copy to clipboard failed", true)
		}
		return m, m.setStatus(fmt.Sprintf("Copied %s: %s", msg.what, msg.value), false)

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, m.spinner.Tick

	case clearStatusMsg:
		if m.state.StatusMessage == msg.message {
			m.state.ClearStatus()
		}
		return m, nil
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Debugf("processAction: %T", action)
	c := m.coordinator

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		c.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.UpdateTextAction:
		c.SetSearch(a.Text)

	case inputtypes.SubmitTextAction, inputtypes.CancelTextAction:
		// The field keeps its text; the pending commit still lands after the quiet period

	case inputtypes.UpdatePickerIndexAction:
		m.state.PickerIndex = a.Index

	case inputtypes.SelectCategoryAction:
		return m.cmdExecutor.ExecuteAll(c.SetCategory(a.Category))

	case inputtypes.SelectSubCategoryAction:
		return m.cmdExecutor.ExecuteAll(c.SetSubCategory(a.SubCategory))

	case inputtypes.ClearFiltersAction:
		effects := c.ClearFilters()
		m.inputHandler.SetText("")
		return m.cmdExecutor.ExecuteAll(effects)

	case inputtypes.BadgeAction:
		product := c.CurrentProduct()
		if product == nil {
			return nil
		}
		if a.SubCategory {
			return m.cmdExecutor.ExecuteAll(c.ApplyBadge(product.CategoryName, product.SubCategoryName))
		}
		return m.cmdExecutor.ExecuteAll(c.SetCategory(product.CategoryName))

	case inputtypes.OpenDetailAction:
		return m.cmdExecutor.ExecuteAll(c.OpenProduct(a.SKU))

	case inputtypes.CloseDetailAction:
		c.CloseProduct()

	case inputtypes.SelectImageAction:
		switch {
		case a.Delta > 0:
			c.Gallery.Next()
		case a.Delta < 0:
			c.Gallery.Previous()
		default:
			c.Gallery.Select(a.Index)
		}

	case inputtypes.CopyAction:
		return m.copyToClipboard(a.What)

	case inputtypes.ShowSheetAction:
		product := c.Gallery.GetProduct()
		if product == nil {
			return nil
		}
		if !m.pager.Available() {
			return m.setStatus("Pager unavailable", true)
		}
		return m.showSheetPager(product.StacklineSku, renderProductSheet(product))

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteAll(c.Reload())

	case inputtypes.ToggleHelpAction:
		if m.pager.Available() {
			return m.showHelpPager(views.HelpText())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}

	return nil
}

// copyToClipboard copies the selected image URL or the retailer SKU of the open product
func (m *Model) copyToClipboard(what string) tea.Cmd {
	product := m.coordinator.Gallery.GetProduct()
	if product == nil {
		return nil
	}

	label, value := "image URL", m.coordinator.Gallery.SelectedImage()
	if what == "sku" {
		label, value = "SKU", product.RetailerSku
		if value == "" {
			value = product.StacklineSku
		}
	}
	if value == "" {
		return m.setStatus("Nothing to copy", true)
	}

	return func() tea.Msg {
		return copyMsg{what: label, value: value, err: clipboard.WriteAll(value)}
	}
}

// setStatus shows a status bar message and schedules its removal
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.state.SetStatus(message, isError)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{message: message}
	})
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager(content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// showSheetPager returns a command that shows a product sheet using ov pager
func (m *Model) showSheetPager(sku, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		program.Send(resumeRenderingMsg{})
		return sheetPagerMsg{sku: sku, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(mode)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelp(m.help, keysForMode(mode, m.coordinator.HasFilters()))
	if picker := m.inputHandler.Picker(); picker != nil {
		m.viewModel.SetPickerOptions(picker.Options())
	} else {
		m.viewModel.SetPickerOptions(nil)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}
