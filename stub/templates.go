package stub

import "email-classifier/domain"

var templates = map[domain.Category][]string{
	domain.Spam: {
		"Este email parece ser spam. Recomendamos não clicar em links nem compartilhar dados pessoais.",
		"Mensagem identificada como spam. Nenhuma resposta é necessária.",
	},
	domain.Promotional: {
		"Obrigado pela oferta. No momento não temos interesse, mas manteremos seu contato.",
		"Agradecemos o envio da promoção. Caso haja interesse, entraremos em contato.",
	},
	domain.Work: {
		"Obrigado por entrar em contato. Recebemos sua solicitação e retornaremos em até 24 horas úteis.\n\nAtenciosamente,\nEquipe",
		"Sua solicitação foi registrada. Nossa equipe está analisando a questão e responderá brevemente.\n\nCordialmente,\nCentral de Atendimento",
	},
	domain.Personal: {
		"Muito obrigado pela mensagem! É sempre um prazer receber notícias suas.\n\nUm abraço,\n[Nome]",
		"Que gentileza sua! Obrigado por compartilhar esse momento comigo.\n\nCom carinho,\n[Nome]",
	},
	domain.Important: {
		"Recebemos sua mensagem e ela foi marcada como prioritária. Retornaremos o mais rápido possível.\n\nAtenciosamente,\nEquipe de Suporte",
		"Confirmamos o recebimento. Sua solicitação urgente já está sendo tratada pela equipe responsável.\n\nAtenciosamente,\nEquipe Técnica",
	},
	domain.Failure: {
		"Não foi possível analisar este email. Verifique se o conteúdo está em português.",
	},
	domain.Undefined: {
		"Obrigado pelo contato. Recebemos sua mensagem e responderemos assim que possível.",
	},
}
