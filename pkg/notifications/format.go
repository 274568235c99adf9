package notifications

import "fmt"

// EventKind identifies a negotiation or escrow state transition that is
// narrated inside the conversation.
type EventKind string

const (
	EventOfferSubmitted  EventKind = "offer_submitted"
	EventOfferAccepted   EventKind = "offer_accepted"
	EventSwapProposed    EventKind = "swap_proposed"
	EventSwapAccepted    EventKind = "swap_accepted"
	EventSwapCompleted   EventKind = "swap_completed"
	EventEscrowInitiated EventKind = "escrow_initiated"
	EventEscrowApproved  EventKind = "escrow_approved"
	EventEscrowRejected  EventKind = "escrow_rejected"
	EventEscrowCompleted EventKind = "escrow_completed"
	EventEscrowReminder  EventKind = "escrow_reminder"
)

// Event carries everything needed to render a system message for a
// transition. ActorID becomes the message sender.
type Event struct {
	Kind         EventKind
	ChatID       string
	ActorID      string
	ProductTitle string
	Amount       int64
	Note         string
}

// Format renders the system-message text for an event. The output is
// deterministic for a given event, so the same transition always reads
// the same inside a conversation.
func Format(e Event) string {
	switch e.Kind {
	case EventOfferSubmitted:
		return fmt.Sprintf("💰 New Offer: ₹%d for \"%s\"", e.Amount, e.ProductTitle)
	case EventOfferAccepted:
		return "✅ Offer accepted! You can now use Escrow for safe transaction."
	case EventSwapProposed:
		note := e.Note
		if note == "" {
			note = "Check my items!"
		}
		return fmt.Sprintf("🔄 Swap Proposal for \"%s\": %s", e.ProductTitle, note)
	case EventSwapAccepted:
		return "✅ Swap accepted! Coordinate the exchange."
	case EventSwapCompleted:
		return "🤝 Swap completed! Both items exchanged."
	case EventEscrowInitiated:
		return "🛡️ Escrow initiated! Payment is now held. Waiting for admin approval."
	case EventEscrowApproved:
		return "✅ Escrow approved by admin. The buyer can now confirm completion."
	case EventEscrowRejected:
		return "❌ Escrow rejected by admin. The hold has been released."
	case EventEscrowCompleted:
		return fmt.Sprintf("🎉 Transaction completed! \"%s\" is now sold.", e.ProductTitle)
	case EventEscrowReminder:
		return "⏳ Escrow still awaiting admin approval."
	default:
		return string(e.Kind)
	}
}
