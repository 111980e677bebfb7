package notice

import (
	"github.com/bnema/litebot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	banner  lipgloss.Style
	detail  lipgloss.Style
	levels  map[domain.NoticeLevel]lipgloss.Style
	markers map[domain.NoticeLevel]string
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		banner: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244")).Padding(0, 2),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		levels: map[domain.NoticeLevel]lipgloss.Style{
			domain.NoticeSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			domain.NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
			domain.NoticeWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			domain.NoticeError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			domain.NoticeTutor:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("141")),
		},
		markers: map[domain.NoticeLevel]string{
			domain.NoticeSuccess: "✔",
			domain.NoticeInfo:    "•",
			domain.NoticeWarning: "!",
			domain.NoticeError:   "✖",
			domain.NoticeTutor:   "?",
		},
	}
}
