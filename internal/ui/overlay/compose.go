package overlay

import (
	"fmt"

	"github.com/riordanpawley/outcome/internal/domain"
)

// ExplorerURL is the transaction explorer link template
const ExplorerURL = "https://explorer.solana.com/tx/"

// Default action labels, shown when the caller supplies no actions
const (
	DefaultFailureLabel = "Close"
	DefaultSuccessLabel = "Continue"
)

const (
	shortHead = 6
	shortTail = 4
)

// Slot says where a button came from
type Slot int

const (
	SlotPrimary Slot = iota
	SlotSecondary
	SlotDefault
)

// String returns the string representation of the slot
func (s Slot) String() string {
	switch s {
	case SlotPrimary:
		return "primary"
	case SlotSecondary:
		return "secondary"
	case SlotDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Button is one entry of the action row
type Button struct {
	Slot      Slot
	Label     string
	Icon      string
	Key       rune
	Prominent bool
	// Gradient paints a prominent button with the primary-to-accent wash
	Gradient bool

	activate func()
}

// Activate invokes the button's callback
func (b Button) Activate() {
	if b.activate != nil {
		b.activate()
	}
}

// Summary is the compact first row of the detail panel
type Summary struct {
	Name     string
	HasImage bool
	// Price is "<price> <currency>", empty without a price
	Price string
	// Badge is "ID: <id>", empty without an id
	Badge string
}

// Reference is the transaction row of the detail panel
type Reference struct {
	Full  string
	Short string
	URL   string
}

// DetailBlock is the success-only panel
type DetailBlock struct {
	Summary   Summary
	Reference *Reference
}

// Layout is the composed content of one overlay render
type Layout struct {
	Variant domain.Variant
	Theme   Theme
	Title   string
	Message string
	Detail  *DetailBlock
	Buttons []Button
	// Sparkle adds the decorative flourish to the icon badge
	Sparkle bool
}

// Compose assembles the layout for a request. The theme is resolved here,
// once per render.
func Compose(req domain.Request) Layout {
	variant := req.VariantOf()

	return Layout{
		Variant: variant,
		Theme:   Resolve(req.Payload),
		Title:   req.Title,
		Message: req.Message,
		Detail:  composeDetail(req.Detail()),
		Buttons: ResolveActions(variant, req.Actions, req.Dismiss),
		Sparkle: variant == domain.VariantSuccess,
	}
}

func composeDetail(d *domain.Detail) *DetailBlock {
	if d == nil {
		return nil
	}

	block := &DetailBlock{
		Summary: Summary{
			Name:     d.Name,
			HasImage: d.Image != "",
		},
	}
	if d.Price != "" {
		block.Summary.Price = fmt.Sprintf("%s %s", d.Price, d.DisplayCurrency())
	}
	if d.ID != "" {
		block.Summary.Badge = "ID: " + d.ID
	}
	if d.HasTransaction() {
		block.Reference = &Reference{
			Full:  d.TransactionHash,
			Short: ShortReference(d.TransactionHash),
			URL:   TransactionURL(d.TransactionHash),
		}
	}
	return block
}

// ResolveActions builds the action row. With neither a primary nor a
// secondary action a single default button calls dismiss; otherwise only the
// supplied actions are shown, primary first.
func ResolveActions(variant domain.Variant, actions *domain.Actions, dismiss func()) []Button {
	if actions.Empty() {
		b := Button{
			Slot:     SlotDefault,
			Label:    DefaultFailureLabel,
			activate: dismiss,
		}
		if variant == domain.VariantSuccess {
			b.Label = DefaultSuccessLabel
			b.Prominent = true
			b.Gradient = true
		}
		return []Button{b}
	}

	var buttons []Button
	if a := actions.Primary; a != nil {
		buttons = append(buttons, Button{
			Slot:      SlotPrimary,
			Label:     a.Label,
			Icon:      a.Icon,
			Key:       a.Key,
			Prominent: true,
			Gradient:  variant == domain.VariantSuccess,
			activate:  a.OnActivate,
		})
	}
	if a := actions.Secondary; a != nil {
		buttons = append(buttons, Button{
			Slot:     SlotSecondary,
			Label:    a.Label,
			Icon:     a.Icon,
			Key:      a.Key,
			activate: a.OnActivate,
		})
	}
	return buttons
}

// ShortReference abbreviates a reference of ten or more characters to its
// first six and last four, joined by "...". Shorter references are returned
// unchanged.
func ShortReference(ref string) string {
	r := []rune(ref)
	if len(r) < shortHead+shortTail {
		return ref
	}
	return string(r[:shortHead]) + "..." + string(r[len(r)-shortTail:])
}

// TransactionURL returns the explorer link for a reference, verbatim
func TransactionURL(ref string) string {
	return ExplorerURL + ref
}
