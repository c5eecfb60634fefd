package tui

import (
	"fmt"
	"strings"
)

// View implements [tea.Model] for the main loop: one of the form, detail or
// list screens depending on state.
func (m mainLoopModel) View() string {
	switch {
	case m.mode == formCreate || m.mode == formEdit:
		return m.viewAccountForm()
	case m.mode == formFieldCreate || m.mode == formFieldEdit:
		return m.viewFieldForm()
	case m.detail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("The vault is empty. Press n to add an account.\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %s\n", cursor, fitText(item.Title, 30), fitText(item.Username, 24)))
		}
	}

	b.WriteString(m.viewStatus())

	return renderPage(
		"PASSVAULT",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ e: edit │ ctrl+d: delete │ l: lock │ q: quit",
	)
}

func (m mainLoopModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return m.viewList()
	}

	password := strings.Repeat("•", 8)
	if m.reveal {
		password = item.Secret.Password
	}

	expires := "-"
	if item.Secret.ExpirationDate != nil {
		expires = item.Secret.ExpirationDate.Format(expirationLayout)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Title:     %s\n", item.Title))
	b.WriteString(fmt.Sprintf("Username:  %s\n", item.Username))
	b.WriteString(fmt.Sprintf("Password:  %s\n", password))
	b.WriteString(fmt.Sprintf("URL:       %s\n", valueOrDash(item.Secret.URL)))
	b.WriteString(fmt.Sprintf("Notes:     %s\n", valueOrDash(item.Secret.Notes)))
	b.WriteString(fmt.Sprintf("Expires:   %s\n", expires))

	b.WriteString("\nCustom fields:\n")
	if len(m.fields) == 0 {
		b.WriteString("  -\n")
	}
	for i, field := range m.fields {
		cursor := "  "
		if i == m.fieldIdx {
			cursor = "> "
		}
		value := strings.Repeat("•", 6)
		if m.reveal {
			value = field.Value
		}
		b.WriteString(fmt.Sprintf("%s%-20s %s\n", cursor, fitText(field.Name, 20), fitText(value, 30)))
	}

	b.WriteString(m.viewStatus())

	return renderPage(
		strings.ToUpper(item.Title),
		strings.TrimRight(b.String(), "\n"),
		"space: reveal │ c: copy password │ u: copy username │ f: add field │ x: delete field │ e: edit │ ctrl+d: delete │ esc: back",
	)
}

func (m mainLoopModel) viewAccountForm() string {
	labels := []string{"Title", "Username", "Password", "URL", "Notes", "Expires"}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-9s │ [%s]\n", label, m.inputs[i].View()))
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	b.WriteString(m.viewStatus())

	title := "NEW ACCOUNT"
	if m.mode == formEdit {
		title = "EDIT ACCOUNT"
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ ctrl+g: generate password │ esc: cancel",
	)
}

func (m mainLoopModel) viewFieldForm() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s │ [%s]\n", "Name", m.inputs[0].View()))
	b.WriteString(fmt.Sprintf("%-6s │ [%s]\n", "Value", m.inputs[1].View()))

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	b.WriteString(m.viewStatus())

	title := "NEW CUSTOM FIELD"
	if m.mode == formFieldEdit {
		title = "EDIT CUSTOM FIELD"
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ esc: cancel",
	)
}

func (m mainLoopModel) viewStatus() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return b.String()
}
