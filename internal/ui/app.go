package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/config"
	"github.com/gravitrone/wordroom/internal/coordinator"
	"github.com/gravitrone/wordroom/internal/storage"
	"github.com/gravitrone/wordroom/internal/ui/components"
	"github.com/gravitrone/wordroom/internal/vocab"
)

const (
	saveTimeout  = 10 * time.Second
	toastTimeout = 2500 * time.Millisecond
)

// --- Focus ---

type focusState int

const (
	focusList focusState = iota
	focusSearch
	focusDetail
	focusNotes
	focusKey
)

// --- Messages ---

type fetchDoneMsg struct{ res coordinator.FetchResult }
type savedMsg struct{ err error }
type clearToastMsg struct{}
type browserMsg struct {
	url string
	err error
}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model: a word list next to a detail pane, or one of
// them at a time on narrow terminals.
type App struct {
	store   *vocab.Store
	backend storage.Backend
	client  *api.Client
	config  *config.Config

	coord  *coordinator.Coordinator
	list   *wordList
	detail *detailPane

	width     int
	height    int
	focus     focusState
	prevFocus focusState

	search    textinput.Model
	scope     vocab.Scope
	notes     textarea.Model
	notesWord string
	keyInput  textinput.Model

	version string
	openURL func(string) error

	deleting    []vocab.Coordinate
	helpOpen    bool
	aboutOpen   bool
	quitConfirm bool
	err         string
	toast       *appToast

	// Saves run one at a time; a change during a save queues one more.
	saving      bool
	pendingSave bool
	saveFailed  bool
	// quitting defers a quit until the running save has finished.
	quitting bool
	// readOnly is set when the data file could not be loaded, so it is
	// never overwritten.
	readOnly bool
}

// NewApp creates the root model. backend and client may be nil: without a
// backend nothing is persisted, without a client words open without
// definitions.
func NewApp(store *vocab.Store, backend storage.Backend, client *api.Client, cfg *config.Config) App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if cfg.CompactWidth <= 0 {
		cfg.CompactWidth = config.DefaultCompactWidth
	}

	list := newWordList(store)
	detail := newDetailPane(store, cfg.Theme, client != nil)
	var provider coordinator.Provider
	if client != nil {
		provider = client
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "search words, # for notes"
	search.CharLimit = 200

	notes := textarea.New()
	notes.Placeholder = "Notes..."
	notes.ShowLineNumbers = false
	notes.CharLimit = 0

	key := textinput.New()
	key.Prompt = ""
	key.Placeholder = "Wordnik API key"
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'

	return App{
		store:    store,
		backend:  backend,
		client:   client,
		config:   cfg,
		coord:    coordinator.New(store, list, detail, provider),
		list:     list,
		detail:   detail,
		search:   search,
		notes:    notes,
		keyInput: key,
		version:  "dev",
		openURL:  browser.OpenURL,
	}
}

// WithVersion sets the version shown in the About box.
func (a App) WithVersion(v string) App {
	if v != "" {
		a.version = v
	}
	return a
}

// WithBrowser replaces the function used to open wordnik.com pages.
func (a App) WithBrowser(open func(string) error) App {
	a.openURL = open
	return a
}

// WithLoadError reports a failed vocabulary load and turns off saving so the
// unreadable file is left alone.
func (a App) WithLoadError(err error) App {
	if err == nil {
		return a
	}
	a.err = fmt.Sprintf("load vocabulary: %v (changes will not be saved)", err)
	a.readOnly = true
	return a
}

// Close cancels any running lookup.
func (a App) Close() {
	a.coord.Close()
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		mode := coordinator.Regular
		if msg.Width < a.config.CompactWidth {
			mode = coordinator.Compact
		}
		a.coord.LayoutChanged(mode)
		a.resizeEditors()
		return a, nil

	case fetchDoneMsg:
		return a.applyFetch(msg.res)

	case savedMsg:
		a.saving = false
		var toast tea.Cmd
		if msg.err != nil {
			a.saveFailed = true
			a.err = fmt.Sprintf("save vocabulary: %v", msg.err)
		} else if a.saveFailed {
			a.saveFailed = false
			a.err = ""
			if !a.pendingSave {
				toast = a.setToast("success", "Vocabulary saved.")
			}
		}
		if a.pendingSave {
			a.pendingSave = false
			cmd := a.save()
			return a, cmd
		}
		if a.quitting {
			a.quitting = false
			return a.quit()
		}
		return a, toast

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case browserMsg:
		if msg.err != nil {
			cmd := a.setToast("error", fmt.Sprintf("open %s: %v", msg.url, msg.err))
			return a, cmd
		}
		cmd := a.setToast("info", "Opened "+msg.url)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	switch a.focus {
	case focusSearch:
		a.search, cmd = a.search.Update(msg)
	case focusNotes:
		a.notes, cmd = a.notes.Update(msg)
	case focusKey:
		a.keyInput, cmd = a.keyInput.Update(msg)
	}
	return a, cmd
}

// --- Key Handling ---

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.quitConfirm {
		switch {
		case isKey(msg, "y"):
			a.coord.Close()
			return a, tea.Quit
		case isKey(msg, "n"), isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}
	if a.deleting != nil {
		return a.handleDeleteConfirm(msg)
	}
	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?") {
			a.helpOpen = false
		}
		return a, nil
	}
	if a.aboutOpen {
		switch {
		case isBack(msg), isKey(msg, "i"):
			a.aboutOpen = false
		case isKey(msg, "o"):
			return a, a.browse(api.SiteURL)
		}
		return a, nil
	}

	switch a.focus {
	case focusSearch:
		return a.handleSearchKeys(msg)
	case focusNotes:
		return a.handleNotesKeys(msg)
	case focusKey:
		return a.handleKeyDialog(msg)
	}

	if a.err != "" && !a.saveFailed && !a.readOnly {
		a.err = ""
	}

	switch {
	case isQuit(msg):
		return a.quit()
	case isKey(msg, "?"):
		a.helpOpen = true
		return a, nil
	case isKey(msg, "i"):
		a.aboutOpen = true
		return a, nil
	case isKey(msg, "o"):
		s := a.detail.top()
		if s == nil {
			cmd := a.setToast("warning", "Open a word first.")
			return a, cmd
		}
		return a, a.browse(api.WordURL(s.word))
	case isKey(msg, "K"):
		a.keyInput.SetValue("")
		a.prevFocus = a.focus
		a.focus = focusKey
		cmd := a.keyInput.Focus()
		return a, cmd
	case isKey(msg, "/"):
		a.coord.ReturnToList()
		a.focus = focusSearch
		cmd := a.search.Focus()
		return a, cmd
	case isKey(msg, "r"):
		fetch, err := a.coord.OpenRandom()
		if errors.Is(err, vocab.ErrEmpty) {
			cmd := a.setToast("warning", "No words stored yet.")
			return a, cmd
		}
		return a.opened(fetch)
	case isKey(msg, "x"):
		a.coord.CloseWord()
		a.focus = focusList
		return a, nil
	}

	if a.detailActive() {
		return a.handleDetailKeys(msg)
	}
	return a.handleListKeys(msg)
}

func (a App) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isUp(msg):
		a.list.cursor.Up()
	case isDown(msg):
		a.list.cursor.Down()
	case isEnter(msg):
		at, ok := a.list.current()
		if !ok {
			return a, nil
		}
		fetch, err := a.coord.OpenRow(at)
		if err != nil {
			cmd := a.setToast("error", err.Error())
			return a, cmd
		}
		return a.opened(fetch)
	case isSpace(msg):
		a.list.toggleMark()
	case isKey(msg, "d", "delete"):
		if targets := a.list.deleteTargets(); len(targets) > 0 {
			a.deleting = targets
		}
	case isKey(msg, "tab"):
		if a.detail.top() != nil {
			a.focus = focusDetail
		}
	case isKey(msg, "m"):
		a.detail.toggleNotes()
	case isKey(msg, "e"):
		return a.startNotes()
	case isBack(msg):
		if a.store.Query().Active() {
			a.search.SetValue("")
			a.coord.SetQuery(vocab.Query{Scope: a.scope})
		}
	default:
		if i, ok := suggestionIndex(msg); ok {
			return a.openSuggestion(i)
		}
	}
	return a, nil
}

func (a App) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isUp(msg):
		a.detail.scroll(-1)
	case isDown(msg):
		a.detail.scroll(1)
	case isKey(msg, "pgup"):
		a.detail.scroll(-a.bodyHeight() / 2)
	case isKey(msg, "pgdown"):
		a.detail.scroll(a.bodyHeight() / 2)
	case isKey(msg, "m"):
		a.detail.toggleNotes()
	case isKey(msg, "e"):
		return a.startNotes()
	case isKey(msg, "l"):
		a.coord.ReturnToList()
	case isKey(msg, "tab"):
		if a.coord.Mode() != coordinator.Compact {
			a.focus = focusList
		}
	case isBack(msg):
		if a.coord.Mode() == coordinator.Compact {
			a.coord.Back()
		} else {
			a.focus = focusList
		}
	default:
		if i, ok := suggestionIndex(msg); ok {
			return a.openSuggestion(i)
		}
	}
	return a, nil
}

func (a App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "ctrl+c"):
		return a.quit()
	case isBack(msg):
		a.search.Blur()
		a.focus = focusList
		return a, nil
	case isKey(msg, "tab"):
		if a.scope == vocab.WordScope {
			a.scope = vocab.NoteScope
		} else {
			a.scope = vocab.WordScope
		}
		a.coord.SetQuery(vocab.ResolveQuery(a.search.Value(), a.scope))
		return a, nil
	case isKey(msg, "down"):
		a.search.Blur()
		a.focus = focusList
		return a, nil
	case isEnter(msg):
		a.search.Blur()
		a.focus = focusList
		if q := vocab.ResolveQuery(a.search.Value(), a.scope); q.Scope != vocab.WordScope {
			return a, nil
		}
		return a.opened(a.coord.SubmitQuery(a.search.Value()))
	}

	var cmd tea.Cmd
	before := a.search.Value()
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() != before {
		a.coord.SetQuery(vocab.ResolveQuery(a.search.Value(), a.scope))
	}
	return a, cmd
}

func (a App) handleNotesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isSave(msg):
		word := a.notesWord
		a.notes.Blur()
		a.focus = a.restingFocus()
		if err := a.coord.EditNotes(word, a.notes.Value()); err != nil {
			cmd := a.setToast("error", err.Error())
			return a, cmd
		}
		if s := a.detail.top(); s != nil && s.word == word {
			s.showNotes = true
		}
		cmd := tea.Batch(a.save(), a.setToast("success", "Notes saved."))
		return a, cmd
	case isBack(msg):
		a.notes.Blur()
		a.focus = a.restingFocus()
		return a, nil
	}
	var cmd tea.Cmd
	a.notes, cmd = a.notes.Update(msg)
	return a, cmd
}

func (a App) handleKeyDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.keyInput.Blur()
		a.focus = a.restingFocus()
		return a, nil
	case isEnter(msg):
		a.keyInput.Blur()
		a.focus = a.restingFocus()
		key := strings.TrimSpace(a.keyInput.Value())
		if key == "" {
			return a, nil
		}
		if err := config.SaveAPIKey(key); err != nil {
			cmd := a.setToast("error", fmt.Sprintf("save config: %v", err))
			return a, cmd
		}
		a.config.APIKey = key
		if a.client != nil {
			a.client.SetAPIKey(key)
		}
		cmds := []tea.Cmd{a.setToast("success", "API key saved.")}
		if word := a.coord.Displayed(); word != "" {
			cmds = append(cmds, fetchCmd(a.coord.OpenWord(word, true)))
		}
		cmd := tea.Batch(cmds...)
		return a, cmd
	}
	var cmd tea.Cmd
	a.keyInput, cmd = a.keyInput.Update(msg)
	return a, cmd
}

func (a App) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		targets := a.deleting
		a.deleting = nil
		words, err := a.coord.DeleteRows(targets)
		if err != nil {
			cmd := a.setToast("error", err.Error())
			return a, cmd
		}
		if a.detail.top() == nil {
			a.focus = focusList
		}
		cmd := tea.Batch(a.save(), a.setToast("success", deletedText(words)))
		return a, cmd
	case isKey(msg, "n"), isBack(msg):
		a.deleting = nil
	}
	return a, nil
}

func deletedText(words []string) string {
	if len(words) == 1 {
		return fmt.Sprintf("Deleted %q.", words[0])
	}
	return fmt.Sprintf("Deleted %d words.", len(words))
}

// --- Actions ---

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.saving {
		a.quitting = true
		return a, nil
	}
	if a.saveFailed {
		a.quitConfirm = true
		return a, nil
	}
	a.coord.Close()
	return a, tea.Quit
}

func (a App) opened(fetch *coordinator.Fetch) (tea.Model, tea.Cmd) {
	if a.coord.Mode() == coordinator.Compact && a.detail.depth() > 0 {
		a.focus = focusDetail
	}
	return a, fetchCmd(fetch)
}

func (a App) openSuggestion(i int) (tea.Model, tea.Cmd) {
	word, ok := a.detail.suggestion(i)
	if !ok {
		return a, nil
	}
	return a.opened(a.coord.OpenWord(word, false))
}

func (a App) startNotes() (tea.Model, tea.Cmd) {
	word := a.coord.Displayed()
	if word == "" {
		return a, nil
	}
	a.notesWord = word
	a.notes.SetValue(a.store.Notes(word))
	a.resizeEditors()
	a.prevFocus = a.focus
	a.focus = focusNotes
	cmd := a.notes.Focus()
	return a, cmd
}

func (a App) applyFetch(res coordinator.FetchResult) (tea.Model, tea.Cmd) {
	applied, recorded := a.coord.ApplyFetch(res)
	if !applied {
		return a, nil
	}
	var cmds []tea.Cmd
	if recorded {
		cmds = append(cmds, a.save())
	}
	if errors.Is(res.Err, api.ErrMissingKey) {
		cmds = append(cmds, a.setToast("warning", "No Wordnik API key. Press K to add one."))
	}
	cmd := tea.Batch(cmds...)
	return a, cmd
}

func fetchCmd(fetch *coordinator.Fetch) tea.Cmd {
	if fetch == nil {
		return nil
	}
	return func() tea.Msg {
		return fetchDoneMsg{res: fetch.Run()}
	}
}

// save persists a snapshot of the store. Only one save runs at a time.
func (a *App) save() tea.Cmd {
	if a.backend == nil || a.readOnly {
		return nil
	}
	if a.saving {
		a.pendingSave = true
		return nil
	}
	a.saving = true
	entries := a.store.Entries()
	backend := a.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{err: backend.Save(ctx, entries)}
	}
}

// browse opens url in the system browser off the update loop.
func (a App) browse(url string) tea.Cmd {
	open := a.openURL
	return func() tea.Msg {
		return browserMsg{url: url, err: open(url)}
	}
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(toastTimeout, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// --- Layout ---

// detailActive reports whether keys go to the detail pane.
func (a App) detailActive() bool {
	if a.coord.Mode() == coordinator.Compact {
		return a.detail.depth() > 0
	}
	return a.focus == focusDetail && a.detail.top() != nil
}

// restingFocus is the pane focus to return to after an editor or dialog
// closes.
func (a App) restingFocus() focusState {
	if a.coord.Mode() == coordinator.Compact {
		if a.detail.depth() > 0 {
			return focusDetail
		}
		return focusList
	}
	if a.prevFocus == focusDetail && a.detail.top() != nil {
		return focusDetail
	}
	return focusList
}

func (a App) showBanner() bool {
	return a.height >= bannerMinHeight
}

// bodyHeight is the height left for the panes.
func (a App) bodyHeight() int {
	h := a.height - 4 // search line, status bar, spacing
	if a.showBanner() {
		h -= len(splitLines(RenderBanner())) + 1
	}
	if h < 5 {
		h = 5
	}
	return h
}

func (a *App) resizeEditors() {
	w := a.width
	if a.coord.Mode() != coordinator.Compact {
		_, w = splitWidths(a.width)
	}
	a.notes.SetWidth(max(components.PaneContentWidth(w), 10))
	a.notes.SetHeight(max(components.PaneContentHeight(a.bodyHeight())-2, 3))
	a.search.Width = max(a.width-20, 10)
}

// --- View ---

func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	var sections []string
	if a.showBanner() {
		sections = append(sections, centerBlockUniform(RenderBanner(), a.width))
	}
	sections = append(sections, a.renderSearch())

	var body string
	switch {
	case a.quitConfirm:
		body = centerBlockUniform(components.ConfirmDialog("Quit", "The last save failed. Quit anyway?", a.width), a.width)
	case a.deleting != nil:
		body = centerBlockUniform(a.renderDeleteConfirm(), a.width)
	case a.focus == focusKey:
		body = centerBlockUniform(components.InputDialog("Wordnik API key", a.keyInput.View(), a.width), a.width)
	case a.helpOpen:
		body = centerBlockUniform(a.renderHelp(), a.width)
	case a.aboutOpen:
		body = centerBlockUniform(a.renderAbout(), a.width)
	default:
		body = a.renderPanes()
	}
	sections = append(sections, body)
	sections = append(sections, components.StatusBar(a.statusLabel(), a.statusHints(), a.width))

	if a.err != "" {
		sections = append(sections, centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width))
	} else if a.toast != nil {
		sections = append(sections, centerBlockUniform(a.renderToast(), a.width))
	}
	return strings.Join(sections, "\n")
}

func (a App) renderSearch() string {
	label := MutedStyle.Render(" / ")
	if a.focus == focusSearch {
		label = SelectedStyle.Render(" / ")
	}
	scope := MutedStyle.Render(" [" + vocab.ResolveQuery(a.search.Value(), a.scope).Scope.String() + "]")
	return label + a.search.View() + scope
}

func (a App) renderPanes() string {
	h := a.bodyHeight()
	contentH := components.PaneContentHeight(h)

	if a.coord.Mode() == coordinator.Compact {
		if a.detail.depth() > 0 {
			return a.renderDetailPane(a.width, h, true)
		}
		return a.renderListPane(a.width, h, contentH, true)
	}

	lw, dw := splitWidths(a.width)
	listActive := a.focus == focusList || a.focus == focusSearch
	left := a.renderListPane(lw, h, contentH, listActive)
	right := a.renderDetailPane(dw, h, !listActive)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a App) renderListPane(width, height, contentH int, active bool) string {
	a.list.setPageSize(contentH - a.list.headerLines())
	title := fmt.Sprintf("Words %d", a.store.Len())
	if n := len(a.list.marked); n > 0 {
		title += fmt.Sprintf(" · %d marked", n)
	}
	return components.Pane(title, a.list.view(components.PaneContentWidth(width)), width, height, active)
}

func (a App) renderDetailPane(width, height int, active bool) string {
	title := "Detail"
	if s := a.detail.top(); s != nil {
		title = components.ClampTextWidth(s.word, components.PaneContentWidth(width)-6)
	}
	editor := ""
	if a.focus == focusNotes {
		editor = a.notes.View()
	}
	content := a.detail.view(components.PaneContentWidth(width), components.PaneContentHeight(height), editor)
	return components.Pane(title, content, width, height, active)
}

func (a App) renderDeleteConfirm() string {
	words := a.list.wordsAt(a.deleting)
	msg := fmt.Sprintf("Delete %d words?", len(words))
	if len(words) == 1 {
		msg = fmt.Sprintf("Delete %q and its notes?", components.SanitizeOneLine(words[0]))
	}
	return components.ConfirmDialog("Delete", msg, a.width)
}

func (a App) renderHelp() string {
	hints := []string{
		components.Hint("/", "Search words (# for notes, tab switches scope)"),
		components.Hint("enter", "Open word, or look up the typed word"),
		components.Hint("space", "Mark row"),
		components.Hint("d", "Delete marked rows"),
		components.Hint("r", "Random word"),
		components.Hint("m", "Switch definition and notes"),
		components.Hint("e", "Edit notes (ctrl+s saves)"),
		components.Hint("1-9", "Open a suggestion"),
		components.Hint("x", "Close word"),
		components.Hint("esc", "Back"),
		components.Hint("o", "Open word on wordnik.com"),
		components.Hint("K", "Set API key"),
		components.Hint("i", "About"),
		components.Hint("q", "Quit"),
	}
	body := MutedStyle.Render("esc to close") + "\n\n" + components.Indent(strings.Join(hints, "\n"), 2)
	return components.TitledBox("Help", body, a.width)
}

func (a App) renderAbout() string {
	width := components.BoxContentWidth(a.width)
	dataFile := a.config.DataFile
	if dataFile == "" {
		dataFile = "not saved"
	}
	row := func(label, value string) string {
		return MutedStyle.Render(label) + components.ClampTextWidthEllipsis(value, width-len(label))
	}
	lines := []string{
		AccentStyle.Render("Wordroom") + " " + MutedStyle.Render(components.ClampTextWidth(a.version, width-9)),
		"",
		components.ClampTextWidth("Definitions from Wordnik, "+api.SiteURL, width),
		"",
		row("data    ", dataFile),
		row("config  ", config.Path()),
	}
	body := MutedStyle.Render("o opens wordnik.com, esc to close") + "\n\n" + strings.Join(lines, "\n")
	return components.TitledBox("About", body, a.width)
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	text := strings.Join(wrapText(a.toast.text, components.BoxContentWidth(a.width)), "\n")
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", text, a.width)
	}
	return components.TitledBox(title, text, a.width)
}

// statusLabel reports the persistence state next to the hints.
func (a App) statusLabel() string {
	switch {
	case a.readOnly:
		return WarningStyle.Render("read-only")
	case a.saveFailed:
		return ErrorStyle.Render("not saved")
	case a.quitting:
		return MutedStyle.Render("saving, then quitting…")
	case a.saving:
		return MutedStyle.Render("saving…")
	case a.backend != nil && a.store.Len() > 0:
		return SuccessStyle.Render("saved")
	}
	return ""
}

func (a App) statusHints() []string {
	switch {
	case a.quitConfirm, a.deleting != nil:
		return []string{components.Hint("y", "Confirm"), components.Hint("n", "Cancel")}
	case a.focus == focusSearch:
		return []string{
			components.Hint("enter", "Open"),
			components.Hint("tab", "Scope"),
			components.Hint("esc", "Done"),
		}
	case a.focus == focusNotes:
		return []string{components.Hint("ctrl+s", "Save"), components.Hint("esc", "Cancel")}
	case a.focus == focusKey:
		return []string{components.Hint("enter", "Save"), components.Hint("esc", "Cancel")}
	case a.aboutOpen:
		return []string{components.Hint("o", "wordnik.com"), components.Hint("esc", "Close")}
	case a.detailActive():
		hints := []string{
			components.Hint("↑/↓", "Scroll"),
			components.Hint("m", "Notes"),
			components.Hint("e", "Edit"),
			components.Hint("o", "Wordnik"),
			components.Hint("esc", "Back"),
		}
		if a.coord.Mode() == coordinator.Compact {
			hints = append(hints, components.Hint("l", "List"))
		}
		return append(hints, components.Hint("?", "Help"), components.Hint("q", "Quit"))
	}
	return []string{
		components.Hint("/", "Search"),
		components.Hint("enter", "Open"),
		components.Hint("space", "Mark"),
		components.Hint("d", "Delete"),
		components.Hint("r", "Random"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}
}
