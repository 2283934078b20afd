package fsa

func tr(from, symbol, to string) Transition {
	return Transition{From: from, Symbol: symbol, To: to}
}
