package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/bedaie/bedaie-web/views/helpers"
)

// CartReservationHours is how long a cart stays reserved after abandonment.
const CartReservationHours = 72

// DefaultItemName replaces a missing product name.
const DefaultItemName = "Product"

// Tier is the tone of a cart abandonment email.
type Tier int

const (
	TierForgotSomething Tier = iota + 1
	TierStillWaiting
	TierLastChance
)

// TierForEmailNumber maps a sequence number onto a tier. Only 1 and 2 have
// their own wording; every other number is the final reminder.
func TierForEmailNumber(n int) Tier {
	switch n {
	case 1:
		return TierForgotSomething
	case 2:
		return TierStillWaiting
	default:
		return TierLastChance
	}
}

func (t Tier) String() string {
	switch t {
	case TierForgotSomething:
		return "forgot_something"
	case TierStillWaiting:
		return "still_waiting"
	case TierLastChance:
		return "last_chance"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

type tierCopy struct {
	Subject  string
	Headline string
	Intro    string
	Button   string
}

var tierCopies = map[Tier]tierCopy{
	TierForgotSomething: {
		Subject:  "Did you forget something?",
		Headline: "Did you forget something?",
		Intro:    "You left a few things in your cart. We saved them for you.",
		Button:   "Return to my cart",
	},
	TierStillWaiting: {
		Subject:  "Your cart is still waiting",
		Headline: "Your cart is still waiting",
		Intro:    "Items in your cart are selling fast. Grab them before they're gone.",
		Button:   "Complete my order",
	},
	TierLastChance: {
		Subject:  "Last chance to complete your order",
		Headline: "Last chance to complete your order",
		Intro:    "This is our final reminder. Once your reservation runs out, your cart will be released.",
		Button:   "Complete my order now",
	},
}

func (t Tier) wording() tierCopy {
	if c, ok := tierCopies[t]; ok {
		return c
	}
	return tierCopies[TierLastChance]
}

// Subject returns the email subject line for the tier.
func (t Tier) Subject() string {
	return t.wording().Subject
}

// CartItem is one line in an abandoned cart. Name and Price may be missing.
type CartItem struct {
	Name  *string
	Price *float64
}

// CartAbandonmentContext is everything the cart abandonment email needs.
// AbandonmentAge is in whole hours; nil is treated as zero.
type CartAbandonmentContext struct {
	EmailNumber    int
	Items          []CartItem
	Total          string
	RecoveryURL    string
	FunnelName     string
	AbandonmentAge *int
	CustomerName   string
	QRCodeURL      string
}

// RenderedEmail is a ready-to-send cart abandonment message.
type RenderedEmail struct {
	Tier    Tier
	Subject string
	HTML    string
	Text    string
}

type cartLine struct {
	Name  string
	Price string
}

type cartAbandonmentView struct {
	tierCopy
	CustomerName string
	Items        []cartLine
	Total        string
	RecoveryURL  string
	FunnelName   string
	ExpiresIn    string
	QRCodeURL    string
}

// HoursRemaining is the reservation time left for a cart of the given age.
func HoursRemaining(age *int) int {
	elapsed := 0
	if age != nil {
		elapsed = *age
	}
	remaining := CartReservationHours - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func lineFor(item CartItem) cartLine {
	name := DefaultItemName
	if item.Name != nil && *item.Name != "" {
		name = *item.Name
	}
	return cartLine{
		Name:  name,
		Price: helpers.FormatNullableRinggit(item.Price),
	}
}

func (data *CartAbandonmentContext) view() cartAbandonmentView {
	lines := make([]cartLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, lineFor(item))
	}

	return cartAbandonmentView{
		tierCopy:     TierForEmailNumber(data.EmailNumber).wording(),
		CustomerName: data.CustomerName,
		Items:        lines,
		Total:        data.Total,
		RecoveryURL:  data.RecoveryURL,
		FunnelName:   data.FunnelName,
		ExpiresIn:    helpers.FormatHours(HoursRemaining(data.AbandonmentAge)),
		QRCodeURL:    data.QRCodeURL,
	}
}

var (
	cartAbandonmentHTML = htmltemplate.Must(htmltemplate.New("cart_abandonment").Parse(cartAbandonmentContentTemplate))
	cartAbandonmentText = texttemplate.Must(texttemplate.New("cart_abandonment_text").Parse(cartAbandonmentTextTemplate))
)

// RenderCartAbandonment renders the HTML and plain-text bodies for one email
// in the cart abandonment sequence.
func RenderCartAbandonment(data *CartAbandonmentContext) (*RenderedEmail, error) {
	tier := TierForEmailNumber(data.EmailNumber)
	view := data.view()

	var content bytes.Buffer
	if err := cartAbandonmentHTML.Execute(&content, view); err != nil {
		return nil, fmt.Errorf("failed to render cart abandonment email content: %w", err)
	}

	html, err := WrapEmailContent(content.String(), view.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap cart abandonment email: %w", err)
	}

	var text bytes.Buffer
	if err := cartAbandonmentText.Execute(&text, view); err != nil {
		return nil, fmt.Errorf("failed to render cart abandonment email text: %w", err)
	}

	return &RenderedEmail{
		Tier:    tier,
		Subject: view.Subject,
		HTML:    html,
		Text:    text.String(),
	}, nil
}
