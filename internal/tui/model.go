package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/storage"
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateTasks SessionState = iota
	StateWeekly
	StateMonthly
	StateAdd
	StateConfirmDelete
)

// taskForm backs the add-habit form.
type taskForm struct {
	Content  string
	Unit     string
	Count    string
	Deadline string
}

type Model struct {
	store         storage.Provider
	tasks         []models.Task
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	cursor int

	// Period under view; weekStart drives the weekly tab, year/month the
	// monthly tab. Arrow navigation pages these.
	weekStart time.Time
	year      int
	month     time.Month

	form     *huh.Form
	formData *taskForm

	taskToDelete string
	formError    string
	quitting     bool
	width        int
	height       int
}

func NewModel(store storage.Provider) (Model, error) {
	tasks, err := store.Load()
	if err != nil {
		return Model{}, err
	}

	now := time.Now()
	return Model{
		store:     store,
		tasks:     tasks,
		state:     StateTasks,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		weekStart: dateutil.WeekStart(now),
		year:      now.Year(),
		month:     now.Month(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// save persists the current collection, surfacing failures in the status line.
func (m *Model) save() {
	if err := m.store.Save(m.tasks); err != nil {
		m.formError = err.Error()
	}
}
