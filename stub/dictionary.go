package stub

import (
	"email-classifier/domain"

	"github.com/samber/lo"
)

// dictionary holds the keywords that vote for each category.
var dictionary = map[domain.Category][]string{
	domain.Spam: {
		"parabéns", "ganhou", "prêmio", "sorteado", "clique aqui", "grátis",
		"oferta imperdível", "dinheiro fácil", "resgate agora", "ganhe",
	},
	domain.Promotional: {
		"promoção", "desconto", "cupom", "liquidação", "black friday",
		"frete grátis", "oferta", "compre", "aproveite", "newsletter",
	},
	domain.Work: {
		"reunião", "projeto", "relatório", "prazo", "cliente", "entrega",
		"equipe", "apresentação", "cronograma", "orçamento",
	},
	domain.Personal: {
		"aniversário", "família", "saudade", "churrasco", "fim de semana",
		"férias", "almoço", "café", "abraço", "festa",
	},
	domain.Important: {
		"urgente", "importante", "imediatamente", "prioridade", "crítico",
		"falha", "problema", "bug", "atenção", "suporte",
	},
}

func dictionaryByLabel() map[string][]string {
	return lo.MapKeys(dictionary, func(_ []string, category domain.Category) string {
		return string(category)
	})
}
