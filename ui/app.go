package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"trailmate/config"
	"trailmate/group"
	"trailmate/location"
)

type page int

const (
	pageTrails page = iota
	pageShare
	pageProfile
	pageCount
)

var pageNames = [...]string{"Trails", "Share", "Profile"}

// AppModel is the navigation shell: a tab bar routing between the named
// pages. The Share page is mounted on entry and torn down on exit, so its
// state never survives navigating away.
type AppModel struct {
	provider  location.Provider
	cfg       config.Config
	log       *zap.Logger
	groupCode string
	ownerName string

	active       page
	share        ShareModel
	shareMounted bool

	width    int
	height   int
	quitting bool
}

func NewAppModel(provider location.Provider, cfg config.Config, log *zap.Logger, groupCode, ownerName string) AppModel {
	app := AppModel{
		provider:  provider,
		cfg:       cfg,
		log:       log,
		groupCode: groupCode,
		ownerName: ownerName,
		active:    pageShare,
		width:     80,
		height:    24,
	}
	app.share = NewShareModel(provider, group.NewSession(), cfg, log, groupCode, ownerName)
	app.shareMounted = true
	return app
}

func (a AppModel) Init() tea.Cmd {
	if a.shareMounted {
		return a.share.Init()
	}
	return nil
}

func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.shareMounted {
			a.share, _ = a.share.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a.quit()
		case "q":
			// While the Share page is capturing input, "q" is just a
			// keystroke.
			if a.active == pageShare && a.share.typing() {
				break
			}
			return a.quit()
		case "tab":
			return a.switchTo((a.active + 1) % pageCount)
		case "shift+tab":
			return a.switchTo((a.active + pageCount - 1) % pageCount)
		}

		if a.active == pageShare && a.shareMounted {
			var cmd tea.Cmd
			a.share, cmd = a.share.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Everything else (position fixes, permission results, form
	// submissions) belongs to the Share page regardless of which tab is
	// in front.
	if a.shareMounted {
		var cmd tea.Cmd
		a.share, cmd = a.share.Update(msg)
		return a, cmd
	}
	return a, nil
}

// switchTo changes tabs, unmounting the Share page on the way out and
// mounting a fresh one on the way in.
func (a AppModel) switchTo(p page) (tea.Model, tea.Cmd) {
	if p == a.active {
		return a, nil
	}

	if a.active == pageShare && a.shareMounted {
		a.share = a.share.teardown()
		a.shareMounted = false
	}

	a.active = p
	if p == pageShare {
		a.share = NewShareModel(a.provider, group.NewSession(), a.cfg, a.log, a.groupCode, a.ownerName)
		a.shareMounted = true
		return a, a.share.Init()
	}
	return a, nil
}

func (a AppModel) quit() (tea.Model, tea.Cmd) {
	if a.shareMounted {
		a.share = a.share.teardown()
	}
	a.quitting = true
	return a, tea.Quit
}

func (a AppModel) View() string {
	if a.quitting {
		return "Leaving the trail...\n"
	}

	var body string
	switch a.active {
	case pageShare:
		body = a.share.View()
	case pageTrails:
		body = trailsPage()
	case pageProfile:
		body = profilePage()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.tabBar(), body)
}

func (a AppModel) tabBar() string {
	tabs := make([]string, 0, pageCount)
	for i, name := range pageNames {
		if page(i) == a.active {
			tabs = append(tabs, activeTabStyle.Render(name))
			continue
		}
		tabs = append(tabs, tabStyle.Render(name))
	}
	return strings.Join(tabs, " ")
}

// The remaining pages are static placeholders around the Share page.

func trailsPage() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Nearby trails"),
		infoStyle.Render("Chain Lakes Loop        10.5 km"),
		infoStyle.Render("Skyline Divide           9.7 km"),
		infoStyle.Render("Ptarmigan Ridge         16.9 km"),
		"",
		mutedStyle.Render("tab: switch page · q: quit"),
	)
	return boxStyle.Render(body)
}

func profilePage() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Profile"),
		infoStyle.Render("Offline profile · nothing synced"),
		"",
		mutedStyle.Render("tab: switch page · q: quit"),
	)
	return boxStyle.Render(body)
}
