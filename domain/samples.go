package domain

// SampleEmails seeds the "random example" action of the text tab.
func SampleEmails() []string {
	return []string{
		"PARABÉNS! Você ganhou um iPhone 15! Clique aqui para resgatar seu prêmio agora mesmo!",
		"Oi! Como você está? Há muito tempo que não nos falamos. Que tal marcarmos um café?",
		"Reunião de equipe agendada para amanhã às 14h. Por favor, confirme sua presença.",
		"Nova coleção de inverno disponível! Aproveite o desconto de 20% até domingo.",
		"Lembrete: sua conta de energia vence amanhã. Evite o corte do fornecimento.",
	}
}
