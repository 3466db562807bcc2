package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/domain"
)

// ContactSender delivers contact form submissions.
type ContactSender interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) (*domain.ContactResult, error)
}

type contactField int

const (
	fieldName contactField = iota
	fieldEmail
	fieldMessage
	numFields
)

type contactModel struct {
	sender    ContactSender
	fields    [numFields]string
	focus     contactField
	err       error
	statusMsg string
	submitted bool
	closed    bool
}

var errContactRejected = errors.New("contact message rejected")

type contactSentMsg struct {
	result *domain.ContactResult
	err    error
}

func newContactModel(s ContactSender) contactModel {
	return contactModel{sender: s}
}

func (m contactModel) Update(msg tea.Msg) (contactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contactSentMsg:
		m.submitted = false
		if msg.err != nil {
			m.err = msg.err
			m.statusMsg = tr("send failed")
			return m, nil
		}
		if msg.result == nil || !msg.result.Success {
			m.err = errContactRejected
			m.statusMsg = tr("send failed")
			if msg.result != nil && msg.result.Message != "" {
				m.statusMsg = msg.result.Message
			}
			return m, nil
		}
		m.statusMsg = tr("sent")
		if msg.result.Message != "" {
			m.statusMsg = msg.result.Message
		}
		m.fields = [numFields]string{}
		m.focus = fieldName
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m contactModel) updateKeys(msg tea.KeyMsg) (contactModel, tea.Cmd) {
	if m.submitted {
		return m, nil
	}
	m.statusMsg = ""
	m.err = nil

	switch msg.String() {
	case "esc":
		m.closed = true
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numFields) % numFields
	case "enter":
		if m.focus == fieldMessage {
			m.fields[fieldMessage] = editRune(m.fields[fieldMessage], "\n")
		} else {
			m.focus++
		}
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
	}
	return m, nil
}

func (m contactModel) message() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    m.fields[fieldName],
		Email:   m.fields[fieldEmail],
		Message: m.fields[fieldMessage],
	}.Trimmed()
}

func (m contactModel) submit() (contactModel, tea.Cmd) {
	msg := m.message()
	if err := msg.Validate(); err != nil {
		m.err = err
		if errors.Is(err, domain.ErrInvalidEmail) {
			m.statusMsg = tr("bad email")
			m.focus = fieldEmail
		} else {
			m.statusMsg = tr("required")
		}
		return m, nil
	}
	if m.sender == nil {
		m.err = errors.New("no contact sender")
		m.statusMsg = tr("send failed")
		return m, nil
	}

	m.submitted = true
	sender := m.sender
	return m, func() tea.Msg {
		res, err := sender.SendContactMessage(context.Background(), msg)
		return contactSentMsg{result: res, err: err}
	}
}

func (m contactModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	labels := [numFields]string{tr("name"), tr("email"), tr("message")}
	for i := contactField(0); i < numFields; i++ {
		cursor := " "
		style := metaStyle
		value := m.fields[i]
		if i == m.focus {
			cursor = inputPromptStyle.Render(">")
			style = selectedStyle
			value += accentStyle.Render("█")
		}
		if value == "" {
			value = inputPlaceholderStyle.Render("...")
		}
		if i == fieldMessage {
			value = strings.ReplaceAll(value, "\n", "\n           ")
		}
		fmt.Fprintf(&b, " %s %s %s\n", cursor, style.Render(fmt.Sprintf("%-8s", labels[i])), value)
	}

	b.WriteString("\n ")
	switch {
	case m.submitted:
		b.WriteString(dimStyle.Render(tr("sending")))
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.statusMsg))
	case m.statusMsg != "":
		b.WriteString(accentStyle.Render(m.statusMsg))
	}
	return b.String()
}
