package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"okada/internal/adapters/in/http/api"
	"okada/internal/core/domain/model/order"

	"github.com/charmbracelet/lipgloss"
)

const timeLayout = "2006-01-02 15:04"

// Renderer formats orders for the terminal. Colours are only emitted when
// the writer is a colour-capable terminal.
type Renderer struct {
	out io.Writer

	success    lipgloss.Style
	failure    lipgloss.Style
	inProgress lipgloss.Style
	heading    lipgloss.Style
	muted      lipgloss.Style
	errText    lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	badge := r.NewStyle().Bold(true).Padding(0, 1)

	return &Renderer{
		out:        out,
		success:    badge.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#15803d")),
		failure:    badge.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#b91c1c")),
		inProgress: badge.Foreground(lipgloss.Color("#1f2937")).Background(lipgloss.Color("#facc15")),
		heading:    r.NewStyle().Bold(true).Underline(true),
		muted:      r.NewStyle().Faint(true),
		errText:    r.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
	}
}

// Badge renders the status label in its tone colour.
func (r *Renderer) Badge(s order.Status) string {
	switch s.Tone() {
	case order.ToneSuccess:
		return r.success.Render(s.Label())
	case order.ToneFailure:
		return r.failure.Render(s.Label())
	default:
		return r.inProgress.Render(s.Label())
	}
}

var stepMarks = map[order.StepState]string{
	order.StepCompleted: "[x]",
	order.StepCurrent:   "[>]",
	order.StepPending:   "[ ]",
	order.StepCancelled: "[-]",
}

// Timeline renders the happy path, one step per line.
func (r *Renderer) Timeline(current order.Status) string {
	var b strings.Builder
	for _, step := range order.Timeline(current) {
		line := fmt.Sprintf("%s %s", stepMarks[step.State], step.Status.Label())
		if step.State == order.StepPending || step.State == order.StepCancelled {
			line = r.muted.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) OrderDetails(d api.OrderDetails) {
	o := d.Order
	status, _ := order.ParseStatus(o.Status)

	fmt.Fprintf(r.out, "%s  %s\n", r.heading.Render(o.OrderNumber), r.Badge(status))
	fmt.Fprintf(r.out, "Address:  %s\n", o.DeliveryAddress)
	if o.DeliveryLat != nil && o.DeliveryLng != nil {
		fmt.Fprintf(r.out, "Location: %s, %s\n", *o.DeliveryLat, *o.DeliveryLng)
	}
	fmt.Fprintf(r.out, "Payment:  %s (%s)\n", o.PaymentMethod, o.PaymentStatus)
	fmt.Fprintf(r.out, "Total:    %s\n", fcfa(o.Total))
	if o.RiderName != nil {
		fmt.Fprintf(r.out, "Rider:    %s\n", *o.RiderName)
	}
	if o.Notes != nil {
		fmt.Fprintf(r.out, "Notes:    %s\n", *o.Notes)
	}
	fmt.Fprintf(r.out, "Version:  %d\n\n", o.Version)

	if len(d.Items) > 0 {
		fmt.Fprintln(r.out, r.heading.Render("Items"))
		for _, it := range d.Items {
			fmt.Fprintf(r.out, "  %dx %s  %s\n", it.Quantity, it.ProductName, fcfa(it.Total))
		}
		fmt.Fprintln(r.out)
	}

	if len(d.Photos) > 0 {
		fmt.Fprintln(r.out, r.heading.Render("Quality photos"))
		for _, p := range d.Photos {
			line := fmt.Sprintf("  %s  %s", p.ApprovalStatus, p.PhotoUrl)
			if p.RejectionReason != nil {
				line += "  (" + *p.RejectionReason + ")"
			}
			fmt.Fprintln(r.out, line)
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, r.heading.Render("Progress"))
	fmt.Fprint(r.out, r.Timeline(status))
	fmt.Fprintln(r.out)
	r.NextStatuses(status.NextStatuses())
}

func (r *Renderer) NextStatuses(next []order.Status) {
	if len(next) == 0 {
		fmt.Fprintln(r.out, r.muted.Render("Final status, no further action."))
		return
	}
	labels := make([]string, len(next))
	for i, s := range next {
		labels[i] = s.String()
	}
	fmt.Fprintf(r.out, "Next: %s\n", strings.Join(labels, ", "))
}

func (r *Renderer) StatusHistory(history []api.StatusTransition) {
	if len(history) == 0 {
		fmt.Fprintln(r.out, r.muted.Render("No status changes."))
		return
	}
	for _, t := range history {
		from := "(new)"
		if t.PreviousStatus != nil {
			from = *t.PreviousStatus
		}
		line := fmt.Sprintf("%s  %s -> %s  by %s #%d", t.CreatedAt.UTC().Format(timeLayout), from, t.NewStatus, t.ChangedByType, t.ChangedBy)
		if t.RiderId != nil {
			line += fmt.Sprintf("  rider #%d", *t.RiderId)
		}
		if t.Notes != nil {
			line += "  " + *t.Notes
		}
		fmt.Fprintln(r.out, line)
	}
}

func (r *Renderer) EditHistory(history []api.FieldEdit) {
	if len(history) == 0 {
		fmt.Fprintln(r.out, r.muted.Render("No edits."))
		return
	}
	for _, e := range history {
		line := fmt.Sprintf("%s  %s: %s -> %s  by %s #%d", e.CreatedAt.UTC().Format(timeLayout),
			e.FieldChanged, orEmpty(e.OldValue), orEmpty(e.NewValue), e.EditedByType, e.EditedBy)
		if e.Reason != nil {
			line += "  (" + *e.Reason + ")"
		}
		fmt.Fprintln(r.out, line)
	}
}

func (r *Renderer) Orders(page api.OrderPage) {
	for _, o := range page.Orders {
		status, _ := order.ParseStatus(o.Status)
		fmt.Fprintf(r.out, "%-6d %-10s %s  %s  %s\n", o.Id, o.OrderNumber, r.Badge(status), fcfa(o.Total), o.DeliveryAddress)
	}
	fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf("%d-%d of %d", min(page.Offset+1, int(page.Total)), page.Offset+len(page.Orders), page.Total)))
}

func (r *Renderer) Riders(riders []api.Rider) {
	if len(riders) == 0 {
		fmt.Fprintln(r.out, r.muted.Render("No rider available."))
		return
	}
	for _, rd := range riders {
		fmt.Fprintf(r.out, "%-6d %-24s %d.%d  %d deliveries  %s\n",
			rd.Id, rd.Name, rd.Rating/10, rd.Rating%10, rd.CompletedDeliveries, rd.Phone)
	}
}

func (r *Renderer) Transition(t api.StatusTransition) {
	next, _ := order.ParseStatus(t.NewStatus)
	fmt.Fprintf(r.out, "Order %d is now %s (%s)\n", t.OrderId, r.Badge(next), t.CreatedAt.UTC().Format(time.RFC3339))
}

// Unavailable stands in for a section whose load failed.
func (r *Renderer) Unavailable(section string, err error) {
	fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf("Could not load %s, try again: %v", section, err)))
}

func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.errText.Render("Error: "+err.Error()))
}

// fcfa formats minor units (centimes) as whole francs.
func fcfa(minor int64) string {
	francs := minor / 100
	s := fmt.Sprintf("%d", francs)

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 && s[i-1] != '-' {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String() + " FCFA"
}

func orEmpty(s *string) string {
	if s == nil || *s == "" {
		return `""`
	}
	return *s
}
