package domain

// DefaultCurrency is shown after a price when the detail carries no currency
const DefaultCurrency = "SOL"

// Request is the caller-owned description of an outcome overlay.
//
// It is rebuilt by the host on every state change and never retained by the
// overlay beyond the render it was supplied for. IsOpen alone decides whether
// the overlay is mounted.
type Request struct {
	IsOpen    bool
	Title     string
	Message   string
	Payload   Payload
	Actions   *Actions
	OnDismiss func()
}

// Payload is the variant-specific part of a request: Failure or Success.
type Payload interface {
	Variant() Variant
	payload()
}

// Failure is the payload of a failed outcome. It has no detail slot.
type Failure struct {
	Type FailureType
}

// Variant implements Payload
func (Failure) Variant() Variant { return VariantFailure }

func (Failure) payload() {}

// Success is the payload of a successful outcome
type Success struct {
	Type   SuccessType
	Detail *Detail
}

// Variant implements Payload
func (Success) Variant() Variant { return VariantSuccess }

func (Success) payload() {}

// Detail summarises what the successful action produced (an item and its
// transaction).
type Detail struct {
	Name            string
	Image           string
	Price           string
	Currency        string
	ID              string
	TransactionHash string
}

// DisplayCurrency returns the currency token, falling back to DefaultCurrency
func (d *Detail) DisplayCurrency() string {
	if d.Currency == "" {
		return DefaultCurrency
	}
	return d.Currency
}

// HasTransaction reports whether a transaction reference is present
func (d *Detail) HasTransaction() bool {
	return d != nil && d.TransactionHash != ""
}

// Action is a caller-supplied button for the overlay's action row
type Action struct {
	Label      string
	OnActivate func()
	// Icon is an optional glyph rendered before the label
	Icon string
	// Key is an optional shortcut that activates the action
	Key rune
}

// Actions holds the optional primary and secondary buttons
type Actions struct {
	Primary   *Action
	Secondary *Action
}

// Empty reports whether neither button is supplied
func (a *Actions) Empty() bool {
	return a == nil || (a.Primary == nil && a.Secondary == nil)
}

// NormalizePayload returns p in value form. *Success and *Failure satisfy
// Payload through their value methods, so they are dereferenced here; a nil
// pointer is no payload.
func NormalizePayload(p Payload) Payload {
	switch p := p.(type) {
	case *Success:
		if p == nil {
			return nil
		}
		return *p
	case *Failure:
		if p == nil {
			return nil
		}
		return *p
	}
	return p
}

// VariantOf returns the variant of a request payload. A nil payload is a
// failure with the default theme.
func (r Request) VariantOf() Variant {
	p := NormalizePayload(r.Payload)
	if p == nil {
		return VariantFailure
	}
	return p.Variant()
}

// Detail returns the success detail, or nil for failures and bare successes
func (r Request) Detail() *Detail {
	if s, ok := NormalizePayload(r.Payload).(Success); ok {
		return s.Detail
	}
	return nil
}

// Dismiss invokes the caller's dismissal callback if one was supplied
func (r Request) Dismiss() {
	if r.OnDismiss != nil {
		r.OnDismiss()
	}
}
