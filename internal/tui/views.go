package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kiran/giftwiz/internal/database/repository"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
	acceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	priceStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

func (a *App) View() string {
	var body string
	switch a.step {
	case stepLanding:
		body = a.viewLanding()
	case stepContext:
		body = a.viewContext()
	case stepSwiping:
		body = a.viewSwiping()
	case stepReveal:
		body = a.viewReveal()
	case stepSaved:
		body = a.viewSaved()
	}
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	return body + "\n"
}

func (a *App) viewLanding() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("✨ GiftWiz"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Swipe your way to the perfect gift."))
	b.WriteString("\n\n")
	b.WriteString("Answer a few questions, swipe through gift styles,\nand get a shortlist of real, purchasable gifts.\n")
	if len(a.services.Upcoming) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Coming up:"))
		b.WriteString("\n")
		for i, e := range a.services.Upcoming {
			if i == 3 {
				break
			}
			b.WriteString(faintStyle.Render(fmt.Sprintf("  %s · %s\n", e.Start.Format("Jan 2"), e.Title)))
		}
	}
	b.WriteString(helpStyle.Render("enter start wizard · g saved gifts · q quit"))
	return b.String()
}

func (a *App) viewContext() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Who is this gift for?"))
	b.WriteString("\n\n")

	b.WriteString(a.renderPicker(0, "Relation", relations, a.relationIx))
	b.WriteString(a.renderPicker(1, "Occasion", occasionOptions, a.occasionIx))

	age := a.ageInput
	if age == "" {
		age = "—"
	}
	b.WriteString(a.renderField(2, "Age", age))

	b.WriteString(a.renderField(3, "Budget", budgets[a.budgetIx].Label))

	b.WriteString(helpStyle.Render("tab/↑↓ field · ←→ change · digits set age · enter continue · esc back"))
	return b.String()
}

func (a *App) renderPicker(field int, label string, options []string, ix int) string {
	value := options[ix]
	return a.renderField(field, label, fmt.Sprintf("‹ %s ›", value))
}

func (a *App) renderField(field int, label, value string) string {
	marker := "  "
	style := labelStyle
	if a.ctxField == field {
		marker = "> "
		style = activeStyle
	}
	return fmt.Sprintf("%s%s %s\n\n", marker, style.Render(label+":"), value)
}

func (a *App) viewSwiping() string {
	var b strings.Builder
	done := a.dealt - a.deck.Remaining()
	b.WriteString(titleStyle.Render("✨ Gift Wizard"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(
		fmt.Sprintf("Help us refine recommendations for your %s", a.recipient.Relation)))
	b.WriteString("\n")
	b.WriteString(renderProgress(done, a.dealt, 24))
	b.WriteString("\n\n")

	if card, ok := a.deck.Top(); ok {
		b.WriteString(cardStyle.Render(labelStyle.Render(card.Label) + "\n" + subtitleStyle.Render(card.Description)))
		b.WriteString("\n\n")
		b.WriteString(rejectStyle.Render("← nope"))
		b.WriteString("    ")
		b.WriteString(acceptStyle.Render("love it →"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("←/h reject · →/l accept · esc abandon"))
	} else {
		b.WriteString(subtitleStyle.Render("Analyzing preferences..."))
	}
	return b.String()
}

func renderProgress(done, total, width int) string {
	if total == 0 {
		return ""
	}
	filled := done * width / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (a *App) viewReveal() string {
	var b strings.Builder
	if a.revealing {
		b.WriteString(titleStyle.Render("✨ Wizard is working..."))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(
			fmt.Sprintf("Finding the perfect gifts for your %s...", a.recipient.Relation)))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Your gift shortlist"))
	b.WriteString("\n\n")
	if len(a.products) == 0 {
		b.WriteString(subtitleStyle.Render("No gift recommendations found."))
		b.WriteString("\n")
	}
	for i, p := range a.products {
		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, labelStyle.Render(p.Title), priceStyle.Render(p.Price)))
		if p.Rating > 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf("   ★ %.1f (%d reviews)", p.Rating, p.Reviews)))
			b.WriteString("\n")
		}
		if p.Reason != "" {
			b.WriteString(faintStyle.Render("   " + p.Reason))
			b.WriteString("\n")
		}
		if p.Link != "" {
			b.WriteString(faintStyle.Render("   " + p.Link))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("r start over · g saved gifts · c share link · q quit"))
	return b.String()
}

func (a *App) viewSaved() string {
	if a.inCollection {
		return a.viewCollection()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved gift collections"))
	b.WriteString("\n\n")
	if len(a.profiles) == 0 {
		b.WriteString(subtitleStyle.Render("Complete a gift search to see it here."))
		b.WriteString("\n")
	}
	for i, p := range a.profiles {
		cursor := "  "
		if i == a.profileCursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s — %s (age %s)\n", cursor, labelStyle.Render(p.Relation), p.Occasion, p.Age))
	}
	b.WriteString(helpStyle.Render("↑↓ move · enter open · esc back"))
	return b.String()
}

func (a *App) viewCollection() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Curated specially for them"))
	b.WriteString("\n\n")
	if len(a.collection) == 0 {
		b.WriteString(subtitleStyle.Render("No gift recommendations found."))
		b.WriteString("\n")
	}
	for i, rec := range a.collection {
		cursor := "  "
		if i == a.recCursor {
			cursor = "> "
		}
		saved := " "
		if rec.Saved {
			saved = "♥"
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s\n", cursor, saved,
			labelStyle.Render(rec.ProductTitle), priceStyle.Render(rec.Price),
			renderStatus(rec.Status)))
	}
	b.WriteString(helpStyle.Render("↑↓ move · s save · p cycle status · esc back"))
	return b.String()
}

func renderStatus(status string) string {
	switch status {
	case repository.StatusPurchased:
		return acceptStyle.Render("[purchased]")
	case repository.StatusWrapped:
		return statusStyle.Render("[wrapped]")
	default:
		return faintStyle.Render("[suggested]")
	}
}
