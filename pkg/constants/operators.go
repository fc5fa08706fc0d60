package constants

// --- ОПЕРАТОРЫ для action=order ---
const (
	OperatorTelkomsel = "telkomsel"
	OperatorAxis      = "axis"
	OperatorIndosat   = "indosat"
	OperatorAny       = "any"
)

var Operators = []string{
	OperatorTelkomsel,
	OperatorAxis,
	OperatorIndosat,
	OperatorAny,
}

func IsValidOperator(op string) bool {
	for _, o := range Operators {
		if o == op {
			return true
		}
	}
	return false
}
