// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/manytime/internal/core/decrypt"
	"github.com/toeirei/manytime/internal/core/session"
	"github.com/toeirei/manytime/internal/i18n"
)

// View renders the decryption rows, the key, a status line and the help
// footer. With the menu open the menu box is shown in their place.
func (m Model) View() string {
	if m.sess.Mode() == session.MenuOpen {
		return m.menuView()
	}

	title := titleStyle.Render(i18n.T("app.title"))
	decryptions := m.box(i18n.T("box.decryptions"), m.rowsView())
	keyBox := m.box(i18n.T("box.key"), m.keyView())
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		decryptions,
		keyBox,
		m.statusView(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) box(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		boxTitleStyle.Render(title),
		boxStyle.Render(body),
	)
}

// window returns the first visible column so the cursor stays on screen.
func (m Model) window(gutter int) (offset, visible int) {
	visible = m.width - gutter - 6
	if m.width == 0 || visible < 8 {
		return 0, -1
	}
	col := m.sess.Cursor().Column
	if col >= visible {
		offset = col - visible + 1
	}
	return offset, visible
}

func (m Model) rowsView() string {
	cur := m.sess.Cursor()
	numWidth := len(fmt.Sprint(m.sess.Len()))
	offset, visible := m.window(numWidth + 3)

	lines := make([]string, m.sess.Len())
	for i := range lines {
		row := m.sess.Row(i)
		end := len(row)
		if visible >= 0 {
			end = min(end, offset+visible)
		}

		var sb strings.Builder
		sb.WriteString(lineNumberStyle.Render(fmt.Sprintf("%*d", numWidth, i+1)))
		sb.WriteString("   ")
		for j := min(offset, len(row)); j < end; j++ {
			cell := string(decrypt.Printable(row[j]))
			style := lipgloss.NewStyle()
			if !m.sess.Known(j) {
				style = unknownStyle
			}
			switch {
			case i == cur.Row && j == cur.Column:
				style = style.Inherit(cursorStyle)
			case j == cur.Column:
				style = style.Inherit(columnStyle)
			}
			sb.WriteString(style.Render(cell))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) keyView() string {
	k := m.sess.Key()
	text := k.Highlight(func(cell string, known bool) string {
		if known {
			return cell
		}
		return unknownStyle.Render(cell)
	})
	if m.width > 0 {
		return lipgloss.NewStyle().Width(max(m.width-4, 8)).Render(text)
	}
	return text
}

func (m Model) statusView() string {
	n := m.sess.Notice()
	switch n.Kind {
	case session.NoticeExported:
		return successStyle.Render(i18n.T("notice.exported", n.Path))
	case session.NoticeExportFailed:
		return errorStyle.Render(i18n.T("notice.export_failed", n.Err))
	case session.NoticeCopied:
		return successStyle.Render(i18n.T("notice.copied"))
	case session.NoticeCopyFailed:
		return errorStyle.Render(i18n.T("notice.copy_failed", n.Err))
	}
	k := m.sess.Key()
	cur := m.sess.Cursor()
	left := i18n.T("status.known", k.KnownCount(), k.Len())
	right := i18n.T("status.cursor", cur.Row+1, cur.Column+1)
	return helpStyle.Render(AlignFooter(left, right, max(m.width-2, 0)))
}

func (m Model) menuView() string {
	items := make([]string, len(session.MenuActions))
	for i, a := range session.MenuActions {
		style := menuItemStyle
		if i == m.menuCursor {
			style = menuActiveItemStyle
		}
		items[i] = style.Render(actionLabel(a))
	}
	menu := menuBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		boxTitleStyle.Render(i18n.T("menu.title")),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
	))
	footer := helpStyle.Render(m.help.View(m.menuKeys))
	body := lipgloss.JoinVertical(lipgloss.Center, menu, footer)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func actionLabel(a session.Action) string {
	switch a {
	case session.ActionExport:
		return i18n.T("menu.export")
	case session.ActionCopyKey:
		return i18n.T("menu.copy_key")
	case session.ActionQuit:
		return i18n.T("menu.quit")
	case session.ActionClose:
		return i18n.T("menu.close")
	}
	return ""
}
