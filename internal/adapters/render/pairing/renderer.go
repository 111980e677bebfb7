package pairing

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bnema/litebot/internal/ports"
	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"
)

var ErrEmptyCode = errors.New("pairing code is empty")

// Renderer draws pairing codes as terminal QR codes.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	header lipgloss.Style
	footer lipgloss.Style
}

var _ ports.PairingRenderer = (*Renderer)(nil)

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *Renderer) RenderPairing(code string, validity time.Duration) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}

	var qr strings.Builder
	qrterminal.GenerateHalfBlock(code, qrterminal.L, &qr)

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := fmt.Fprintf(r.out, "%s\n%s%s\n",
		r.header.Render("Scan the code below with WhatsApp > Linked devices"),
		qr.String(),
		r.footer.Render(expiryText(validity)),
	)
	if err != nil {
		return fmt.Errorf("write pairing code: %w", err)
	}
	return nil
}

func expiryText(validity time.Duration) string {
	if validity <= 0 {
		return "The code expires soon, a new one will be shown automatically."
	}

	seconds := int(validity.Round(time.Second) / time.Second)
	unit := "seconds"
	if seconds == 1 {
		unit = "second"
	}
	return fmt.Sprintf("The code expires in %d %s.", seconds, unit)
}
