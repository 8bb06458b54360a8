package scenario

import "github.com/riordanpawley/outcome/internal/domain"

// Binder turns an action spec into the callback the host runs when the button
// is activated
type Binder func(ActionSpec) func()

// Payload returns the variant payload of the scenario's outcome
func (s Scenario) Payload() domain.Payload {
	if s.variant() == domain.VariantSuccess {
		return domain.Success{
			Type:   domain.SuccessType(s.Type),
			Detail: s.Detail.detail(),
		}
	}
	return domain.Failure{Type: domain.FailureType(s.Type)}
}

// Request builds the overlay request for the scenario's outcome
func (s Scenario) Request(open bool, bind Binder, onDismiss func()) domain.Request {
	req := domain.Request{
		IsOpen:    open,
		Title:     s.Title,
		Message:   s.Message,
		Payload:   s.Payload(),
		OnDismiss: onDismiss,
	}
	if s.Primary != nil || s.Secondary != nil {
		req.Actions = &domain.Actions{
			Primary:   s.Primary.action(bind),
			Secondary: s.Secondary.action(bind),
		}
	}
	return req
}

func (d *DetailSpec) detail() *domain.Detail {
	if d == nil {
		return nil
	}
	return &domain.Detail{
		Name:            d.Name,
		Image:           d.Image,
		Price:           d.Price,
		Currency:        d.Currency,
		ID:              d.ID,
		TransactionHash: d.TransactionHash,
	}
}

func (a *ActionSpec) action(bind Binder) *domain.Action {
	if a == nil {
		return nil
	}
	act := &domain.Action{
		Label: a.Label,
		Icon:  a.Icon,
	}
	if r := []rune(a.Key); len(r) == 1 {
		act.Key = r[0]
	}
	if bind != nil {
		act.OnActivate = bind(*a)
	}
	return act
}
