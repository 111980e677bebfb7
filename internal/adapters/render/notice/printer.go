package notice

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
)

// Printer writes one styled line per notice.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	styles styles
}

var _ ports.Notifier = (*Printer)(nil)

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styles: newStyles()}
}

func (p *Printer) Notify(level domain.NoticeLevel, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.out, p.render(level, message))
}

func (p *Printer) render(level domain.NoticeLevel, message string) string {
	style, ok := p.styles.levels[level]
	if !ok {
		style = p.styles.detail
	}
	marker := p.styles.markers[level]
	if marker == "" {
		marker = "-"
	}

	return style.Render(marker + " " + message)
}

// Banner prints the startup box with the build version and the values the
// operator usually wants to double check.
func (p *Printer) Banner(version string, details map[string]string, order []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := []string{p.styles.title.Render("litebot") + " " + p.styles.header.Render(version)}
	for _, key := range order {
		value, ok := details[key]
		if !ok {
			continue
		}
		lines = append(lines, p.styles.header.Render(key+":")+" "+p.styles.detail.Render(value))
	}

	_, _ = fmt.Fprintln(p.out, p.styles.banner.Render(strings.Join(lines, "\n")))
}
