// Package agent holds the AI advisor that turns snapshot figures into
// short financial advice for the freelancer.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/canvaproptk-png/ProFin-Management"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// DefaultTimeout bounds a single advisory call.
const DefaultTimeout = 20 * time.Second

// Fallback is returned whenever the advisory call cannot complete.
const Fallback = "Keep tracking your income and expenses regularly to maintain a healthy cash flow."

// Figures is the numeric summary the advisor reasons about. It carries no
// record-level detail, only aggregates.
type Figures struct {
	TotalIncome        profin.Money
	TotalExpenses      profin.Money
	Balance            profin.Money
	PendingReceivables profin.Money
	ProjectCount       int
	Currency           string
}

// Advisor asks the model for advice, one request at a time.
type Advisor struct {
	Model   string
	Timeout time.Duration

	generate func(ctx context.Context, prompt string) (string, error)
	busy     chan struct{}
}

// New creates an Advisor backed by the given Gemini client.
func New(client *genai.Client) *Advisor {
	a := &Advisor{
		Model:   model,
		Timeout: DefaultTimeout,
		busy:    make(chan struct{}, 1),
	}
	a.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, a.Model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no response from advisor")
		}
		return resp.Candidates[0].Content.Parts[0].Text, nil
	}
	return a
}

// Prompt renders the figures into the instruction sent to the model.
func Prompt(f Figures) string {
	var b strings.Builder
	fmt.Fprintln(&b, "You are a financial advisor for a freelance creative professional.")
	fmt.Fprintln(&b, "Here is their current business summary:")
	fmt.Fprintf(&b, "- Total income: %s %s\n", f.TotalIncome, f.Currency)
	fmt.Fprintf(&b, "- Total expenses: %s %s\n", f.TotalExpenses, f.Currency)
	fmt.Fprintf(&b, "- Balance: %s %s\n", f.Balance, f.Currency)
	fmt.Fprintf(&b, "- Pending receivables: %s %s\n", f.PendingReceivables, f.Currency)
	fmt.Fprintf(&b, "- Active projects: %d\n", f.ProjectCount)
	fmt.Fprintln(&b, "Give one short, concrete piece of advice (2-3 sentences) to improve their finances.")
	return b.String()
}

// Advise asks the model for advice on the given figures. It never fails:
// when the call errors, times out, or another call is already in flight,
// it returns Fallback.
func (a *Advisor) Advise(ctx context.Context, f Figures) string {
	select {
	case a.busy <- struct{}{}:
		defer func() { <-a.busy }()
	default:
		return Fallback
	}

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	advice, err := a.generate(ctx, Prompt(f))
	if err != nil {
		log.Printf("advisor unavailable: %v", err)
		return Fallback
	}
	advice = strings.TrimSpace(advice)
	if advice == "" {
		return Fallback
	}
	return advice
}
