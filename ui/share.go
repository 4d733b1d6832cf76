package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"trailmate/config"
	"trailmate/data/model"
	"trailmate/group"
	"trailmate/location"
)

// Share page messages.
type (
	permissionDeniedMsg struct{}
	initialFixMsg       model.Position
	watchFixMsg         model.Position
	locationErrMsg      struct{ err error }
)

// ShareModel is the location-sharing page. All of its state lives for the
// page session only and is discarded when the page unmounts.
type ShareModel struct {
	provider  location.Provider
	session   *group.Session
	cfg       config.Config
	log       *zap.Logger
	groupCode string
	ownerName string

	width  int
	height int

	loading  bool
	denied   bool
	position model.Position
	region   model.Region
	mode     model.MapMode

	showForm bool
	form     joinForm

	alert      string
	alertCount int

	watching bool
	sub      *location.Subscription
	posChan  chan model.Position
}

// NewShareModel mounts a fresh page. groupCode and ownerName prefill the
// join form.
func NewShareModel(provider location.Provider, session *group.Session, cfg config.Config, log *zap.Logger, groupCode, ownerName string) ShareModel {
	return ShareModel{
		provider:  provider,
		session:   session,
		cfg:       cfg,
		log:       log,
		groupCode: groupCode,
		ownerName: ownerName,
		width:     80,
		height:    24,
		loading:   true,
		mode:      model.MapStandard,
		posChan:   make(chan model.Position, 10),
	}
}

func (m ShareModel) Init() tea.Cmd {
	return m.acquireLocation
}

// acquireLocation runs the mount sequence: permission request, then a
// one-shot fix. The page blocks in its loading view until it resolves.
func (m ShareModel) acquireLocation() tea.Msg {
	perm, err := m.provider.RequestPermission(context.Background())
	if err != nil {
		return locationErrMsg{err}
	}
	if perm != location.PermissionGranted {
		return permissionDeniedMsg{}
	}

	pos, err := m.provider.CurrentPosition(context.Background())
	if err != nil {
		return locationErrMsg{err}
	}
	return initialFixMsg(pos)
}

// waitForFixes re-arms after every delivered message, the only way a
// recurring channel feed reaches the event loop.
func waitForFixes(ch chan model.Position) tea.Cmd {
	return func() tea.Msg {
		return watchFixMsg(<-ch)
	}
}

func (m ShareModel) Update(msg tea.Msg) (ShareModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case permissionDeniedMsg:
		// Setup halts here; the page stays in its loading view.
		m.denied = true
		m = m.showAlert("Permission to access location was denied")
		m.log.Warn("location permission denied")
		return m, nil

	case initialFixMsg:
		m.loading = false
		m.position = model.Position(msg)
		m.region = model.RegionAround(m.position, m.cfg.LatDelta, m.cfg.LngDelta)
		return m, nil

	case watchFixMsg:
		m.position = model.Position(msg)
		m.region = m.region.CenteredOn(m.position)
		return m, waitForFixes(m.posChan)

	case locationErrMsg:
		m.log.Error("location error", zap.Error(msg.err))
		m = m.showAlert("Unable to fetch location")
		return m, nil

	case joinSubmittedMsg:
		return m.join(msg.code, msg.name)

	case joinCancelledMsg:
		m.showForm = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ShareModel) handleKey(msg tea.KeyMsg) (ShareModel, tea.Cmd) {
	// An alert is modal: the next key dismisses it.
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	if m.showForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "m":
		m.mode = m.mode.Next()

	case "g":
		if !m.session.Active() {
			m.form = newJoinForm(m.groupCode, m.ownerName)
			m.showForm = true
		}

	case "x":
		if m.session.Active() {
			m.session.Leave()
			m = m.stopWatch()
		}

	case "up":
		m.region = m.region.Pan(m.region.LatDelta/4, 0)
	case "down":
		m.region = m.region.Pan(-m.region.LatDelta/4, 0)
	case "left":
		m.region = m.region.Pan(0, -m.region.LngDelta/4)
	case "right":
		m.region = m.region.Pan(0, m.region.LngDelta/4)

	case "+", "=":
		m.region = m.region.ZoomIn()
	case "-", "_":
		m.region = m.region.ZoomOut()
	}

	return m, nil
}

// join validates the form values, activates membership and starts the
// watch if it is not already running. Invalid input changes nothing and
// leaves the form open.
func (m ShareModel) join(code, name string) (ShareModel, tea.Cmd) {
	if err := m.session.Join(code, name, m.position); err != nil {
		m = m.showAlert("Please enter a group code and your name")
		return m, nil
	}

	m.showForm = false
	m.log.Info("joined group",
		zap.String("code", m.session.Code()),
		zap.Int("peers", len(m.session.Peers())),
	)

	if m.watching {
		return m, nil
	}
	return m.startWatch()
}

func (m ShareModel) startWatch() (ShareModel, tea.Cmd) {
	ch := m.posChan
	sub, err := m.provider.WatchPosition(location.WatchOptions{
		Interval:    m.cfg.UpdateInterval,
		MinDistance: m.cfg.MinDistance,
	}, func(pos model.Position) {
		select {
		case ch <- pos:
		default:
			// UI is behind; drop rather than block the provider.
		}
	})
	if err != nil {
		m.log.Error("starting position watch", zap.Error(err))
		m = m.showAlert("Unable to start location updates")
		return m, nil
	}

	m.sub = sub
	m.watching = true
	return m, waitForFixes(ch)
}

func (m ShareModel) stopWatch() ShareModel {
	if m.sub != nil {
		m.sub.Remove()
		m.sub = nil
	}
	m.watching = false
	return m
}

// teardown releases the subscription. It runs on every exit path from the
// page: leaving the group, switching tabs, quitting.
func (m ShareModel) teardown() ShareModel {
	return m.stopWatch()
}

func (m ShareModel) showAlert(text string) ShareModel {
	m.alert = text
	m.alertCount++
	return m
}

func (m ShareModel) View() string {
	if m.loading {
		return m.loadingView()
	}

	if m.showForm {
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, m.form.View())
	}

	sections := []string{
		m.statusView(),
		m.mapPanel(),
		m.groupPanel(),
		helpStyle.Render(m.helpLine()),
	}
	if m.alert != "" {
		sections = append(sections, alertStyle.Render(m.alert))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ShareModel) loadingView() string {
	body := "Locating you..."
	if m.denied {
		body = "Waiting for location access"
	}
	out := boxStyle.Render(infoStyle.Render(body))
	if m.alert != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, alertStyle.Render(m.alert))
	}
	return out
}

func (m ShareModel) statusView() string {
	status := fmt.Sprintf(
		"Lat %.5f  Lng %.5f  ±%.0fm  %s  [%s]",
		m.position.Latitude,
		m.position.Longitude,
		m.position.Accuracy,
		m.position.Timestamp.Format("15:04:05"),
		m.mode,
	)
	return infoStyle.Render(status)
}

func (m ShareModel) mapPanel() string {
	markers := []Marker{{
		Latitude:  m.position.Latitude,
		Longitude: m.position.Longitude,
		Title:     "You",
		Self:      true,
	}}
	if m.session.Active() {
		for _, p := range m.session.Peers() {
			markers = append(markers, Marker{
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				Title:     p.Name,
				Color:     p.Color,
			})
		}
	}

	w := m.width - 6
	h := m.contentHeight() - 9
	return boxStyle.Render(RenderMap(m.region, m.mode, markers, w, h))
}

func (m ShareModel) groupPanel() string {
	if !m.session.Active() {
		return mutedStyle.Render("Not sharing. Press g to join a group.")
	}

	line := fmt.Sprintf("Group %s · sharing as %s ·", m.session.Code(), m.session.Name())
	for _, p := range m.session.Peers() {
		line += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(peerGlyph+" "+p.Name)
	}
	return infoStyle.Render(line)
}

func (m ShareModel) helpLine() string {
	if m.session.Active() {
		return "m: map mode · x: leave group · arrows: pan · +/-: zoom · tab: switch page · q: quit"
	}
	return "m: map mode · g: join group · arrows: pan · +/-: zoom · tab: switch page · q: quit"
}

func (m ShareModel) contentHeight() int {
	h := m.height - 2 // tab bar
	if h < 10 {
		h = 10
	}
	return h
}

// typing reports whether keystrokes belong to the page (form input or a
// pending alert) rather than the navigation shell.
func (m ShareModel) typing() bool {
	return m.showForm || m.alert != ""
}
