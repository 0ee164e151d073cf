package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/kiran/giftwiz/internal/config"
	"github.com/kiran/giftwiz/internal/database"
	"github.com/kiran/giftwiz/internal/database/repository"
	"github.com/kiran/giftwiz/internal/occasions"
	"github.com/kiran/giftwiz/internal/search"
	"github.com/kiran/giftwiz/internal/service"
	"github.com/kiran/giftwiz/internal/share"
	"github.com/kiran/giftwiz/internal/wizard"
)

// analyzePause is the fixed "analyzing preferences" beat between the last
// swipe and the reveal.
const analyzePause = 800 * time.Millisecond

// App drives the wizard: landing -> context -> swiping -> reveal, plus the
// saved-collections browser.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	services Services

	step      step
	width     int
	height    int
	status    string
	recipient wizard.Recipient
	deck      *wizard.Deck
	dealt     int // cards in the deck when dealt, for the progress bar
	profileID string

	// context step
	ctxField   int
	relationIx int
	occasionIx int
	budgetIx   int
	ageInput   string

	// reveal step
	revealing bool
	products  []search.Product

	// saved step
	profiles      []repository.RecipientProfile
	profileCursor int
	collection    []repository.Recommendation
	recCursor     int
	inCollection  bool
}

type Repos struct {
	Profiles        *repository.ProfileRepo
	Recommendations *repository.RecommendationRepo
	Sessions        *repository.SessionRepo
}

type Services struct {
	Recommender *service.Recommender
	Upcoming    []occasions.Event
}

type step string

const (
	stepLanding step = "landing"
	stepContext step = "context"
	stepSwiping step = "swiping"
	stepReveal  step = "reveal"
	stepSaved   step = "saved"
)

var (
	relations       = []string{"Partner", "Parent", "Friend", "Child", "Colleague"}
	occasionOptions = []string{"Birthday", "Anniversary", "Holiday", "Graduation", "Just Because"}
	budgets         = []budgetPreset{
		{"Under $25", 0, 25},
		{"$25 - $50", 25, 50},
		{"$50 - $100", 50, 100},
		{"$100 - $250", 100, 250},
		{"$250+", 250, 1000},
	}
)

type budgetPreset struct {
	Label string
	Min   float64
	Max   float64
}

const ctxFieldCount = 4 // relation, occasion, age, budget

func New(ctx context.Context, cfg config.Config, repos Repos, services Services) *App {
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		repos:    repos,
		services: services,
		step:     stepLanding,
		width:    80,
		height:   24,
	}
}

func (a *App) Init() tea.Cmd { return nil }

// messages

type errMsg struct{ err error }
type profileSavedMsg struct{ id string }
type analyzeDoneMsg struct{}
type productsMsg []search.Product
type profilesMsg []repository.RecipientProfile
type collectionMsg []repository.Recommendation
type savedToggledMsg struct {
	id    string
	saved bool
}
type statusCycledMsg struct {
	id     string
	status string
}

// commands

func (a *App) saveProfile() tea.Cmd {
	rec := a.recipient
	return func() tea.Msg {
		id := uuid.NewString()
		err := a.repos.Profiles.Insert(a.ctx, repository.RecipientProfile{
			ID:        id,
			UserID:    database.GuestUserID,
			Name:      rec.Relation,
			Relation:  rec.Relation,
			Age:       rec.Age,
			Occasion:  rec.Occasion,
			BudgetMin: rec.BudgetMin,
			BudgetMax: rec.BudgetMax,
		})
		if err != nil {
			return errMsg{err}
		}
		return profileSavedMsg{id}
	}
}

func (a *App) analyzeCmd() tea.Cmd {
	return tea.Tick(analyzePause, func(time.Time) tea.Msg { return analyzeDoneMsg{} })
}

func (a *App) produceCmd() tea.Cmd {
	recipient, signal, profileID := a.recipient, a.deck.Signal(), a.profileID
	return func() tea.Msg {
		return productsMsg(a.services.Recommender.Produce(a.ctx, recipient, signal, profileID))
	}
}

func (a *App) loadProfiles() tea.Cmd {
	return func() tea.Msg {
		profiles, err := a.repos.Profiles.ListByUser(a.ctx, database.GuestUserID)
		if err != nil {
			return errMsg{err}
		}
		return profilesMsg(profiles)
	}
}

func (a *App) loadCollection(profileID string) tea.Cmd {
	return func() tea.Msg {
		recs, err := a.repos.Recommendations.ListByProfile(a.ctx, profileID)
		if err != nil {
			return errMsg{err}
		}
		return collectionMsg(recs)
	}
}

func (a *App) toggleSaved(rec repository.Recommendation) tea.Cmd {
	return func() tea.Msg {
		if err := a.repos.Recommendations.UpdateSaved(a.ctx, rec.ID, !rec.Saved); err != nil {
			return errMsg{err}
		}
		return savedToggledMsg{id: rec.ID, saved: !rec.Saved}
	}
}

func (a *App) cycleStatus(id string) tea.Cmd {
	return func() tea.Msg {
		status, err := a.repos.Recommendations.CycleStatus(a.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return statusCycledMsg{id: id, status: status}
	}
}

// update

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil

	case errMsg:
		a.status = "error: " + m.err.Error()
		a.revealing = false
		return a, nil

	case profileSavedMsg:
		a.profileID = m.id
		a.deck = wizard.NewDeck(wizard.SwipeCategories(a.recipient.Relation))
		a.dealt = a.deck.Remaining()
		a.step = stepSwiping
		a.status = ""
		return a, nil

	case analyzeDoneMsg:
		if a.deck == nil { // session reset during the pause
			return a, nil
		}
		a.step = stepReveal
		a.revealing = true
		return a, a.produceCmd()

	case productsMsg:
		a.products = m
		a.revealing = false
		return a, nil

	case profilesMsg:
		a.profiles = m
		if a.profileCursor >= len(m) {
			a.profileCursor = 0
		}
		return a, nil

	case collectionMsg:
		a.collection = m
		if a.recCursor >= len(m) {
			a.recCursor = 0
		}
		return a, nil

	case savedToggledMsg:
		for i := range a.collection {
			if a.collection[i].ID == m.id {
				a.collection[i].Saved = m.saved
			}
		}
		return a, nil

	case statusCycledMsg:
		for i := range a.collection {
			if a.collection[i].ID == m.id {
				a.collection[i].Status = m.status
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}
	switch a.step {
	case stepLanding:
		return a.handleLandingKey(m)
	case stepContext:
		return a.handleContextKey(m)
	case stepSwiping:
		return a.handleSwipeKey(m)
	case stepReveal:
		return a.handleRevealKey(m)
	case stepSaved:
		return a.handleSavedKey(m)
	}
	return a, nil
}

func (a *App) handleLandingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "enter", " ":
		a.step = stepContext
		a.status = ""
	case "g":
		a.step = stepSaved
		a.inCollection = false
		return a, a.loadProfiles()
	}
	return a, nil
}

func (a *App) handleContextKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.step = stepLanding
	case "up", "shift+tab":
		if a.ctxField > 0 {
			a.ctxField--
		}
	case "down", "tab":
		if a.ctxField < ctxFieldCount-1 {
			a.ctxField++
		}
	case "left":
		a.cycleContextOption(-1)
	case "right":
		a.cycleContextOption(1)
	case "backspace":
		if a.ctxField == 2 && len(a.ageInput) > 0 {
			a.ageInput = a.ageInput[:len(a.ageInput)-1]
		}
	case "enter":
		a.applyContext()
		if !a.recipient.Ready() {
			a.status = "relation, occasion and age are required"
			return a, nil
		}
		a.status = ""
		return a, a.saveProfile()
	default:
		if a.ctxField == 2 && len(m.String()) == 1 && m.String() >= "0" && m.String() <= "9" && len(a.ageInput) < 3 {
			a.ageInput += m.String()
		}
	}
	a.applyContext()
	return a, nil
}

func (a *App) cycleContextOption(delta int) {
	switch a.ctxField {
	case 0:
		a.relationIx = wrap(a.relationIx+delta, len(relations))
	case 1:
		a.occasionIx = wrap(a.occasionIx+delta, len(occasionOptions))
	case 3:
		a.budgetIx = wrap(a.budgetIx+delta, len(budgets))
	}
}

// applyContext snapshots picker state into the recipient. The recipient is
// frozen once swiping begins; nothing mutates it afterwards.
func (a *App) applyContext() {
	b := budgets[a.budgetIx]
	a.recipient = wizard.Recipient{
		Relation:  relations[a.relationIx],
		Occasion:  occasionOptions[a.occasionIx],
		Age:       strings.TrimSpace(a.ageInput),
		BudgetMin: b.Min,
		BudgetMax: b.Max,
	}
}

func (a *App) handleSwipeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	var out wizard.Outcome
	switch m.String() {
	case "esc":
		a.resetSession()
		return a, nil
	case "left", "h", "x":
		out = a.deck.Swipe(wizard.Rejected)
	case "right", "l", "s":
		out = a.deck.Swipe(wizard.Accepted)
	default:
		return a, nil
	}
	if out.Exhausted {
		return a, a.analyzeCmd()
	}
	return a, nil
}

func (a *App) handleRevealKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.revealing {
		return a, nil
	}
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.resetSession()
	case "g":
		a.step = stepSaved
		a.inCollection = false
		return a, a.loadProfiles()
	case "c":
		a.status = share.Message(a.recipient.Relation) + " " + share.CollectionURL(a.profileID)
	}
	return a, nil
}

func (a *App) handleSavedKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.inCollection {
		switch m.String() {
		case "esc":
			a.inCollection = false
		case "up", "k":
			if a.recCursor > 0 {
				a.recCursor--
			}
		case "down", "j":
			if a.recCursor < len(a.collection)-1 {
				a.recCursor++
			}
		case "s":
			if len(a.collection) > 0 {
				return a, a.toggleSaved(a.collection[a.recCursor])
			}
		case "p":
			if len(a.collection) > 0 {
				return a, a.cycleStatus(a.collection[a.recCursor].ID)
			}
		}
		return a, nil
	}

	switch m.String() {
	case "esc", "q":
		a.step = stepLanding
	case "up", "k":
		if a.profileCursor > 0 {
			a.profileCursor--
		}
	case "down", "j":
		if a.profileCursor < len(a.profiles)-1 {
			a.profileCursor++
		}
	case "enter":
		if len(a.profiles) > 0 {
			a.inCollection = true
			a.recCursor = 0
			return a, a.loadCollection(a.profiles[a.profileCursor].ID)
		}
	}
	return a, nil
}

// resetSession abandons the wizard back to the landing screen. In-flight
// pipeline work is simply ignored when it lands; rows already written stay.
func (a *App) resetSession() {
	a.step = stepLanding
	a.recipient = wizard.Recipient{}
	a.deck = nil
	a.dealt = 0
	a.profileID = ""
	a.products = nil
	a.revealing = false
	a.ctxField = 0
	a.relationIx = 0
	a.occasionIx = 0
	a.budgetIx = 0
	a.ageInput = ""
	a.status = ""
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
