package checkout

// State étape du parcours d'achat, conservée dans la session
type State string

const (
	Browsing  State = "browsing"
	Reviewing State = "reviewing"
	Confirmed State = "confirmed"
	Success   State = "success"
)

type Event int

const (
	AddItem     Event = iota // GET /add_to_cart/:id
	Review                   // GET /checkout
	Confirm                  // POST /checkout
	Acknowledge              // GET /order_success
)

// ParseState valeur absente ou inconnue => Browsing
func ParseState(s string) State {
	switch State(s) {
	case Reviewing, Confirmed, Success:
		return State(s)
	default:
		return Browsing
	}
}

// Next calcule l'état suivant. Acknowledge ne fait avancer que Confirmed/Success.
func Next(from State, ev Event) State {
	switch ev {
	case AddItem:
		return Browsing
	case Review:
		return Reviewing
	case Confirm:
		return Confirmed
	case Acknowledge:
		if from == Confirmed || from == Success {
			return Success
		}
	}
	return from
}
