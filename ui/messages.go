package ui

import (
	"email-classifier/domain"
	"email-classifier/errors"
	goerrors "errors"
)

const (
	MsgEmptyInput        = "Por favor, insira o texto do email para análise."
	MsgNoFileSelected    = "Por favor, selecione um arquivo para análise."
	MsgUnsupportedFormat = "Apenas arquivos .txt são suportados."
	MsgFileTooLarge      = "Arquivo muito grande. O tamanho máximo é 10MB."
	MsgConnection        = "Erro de conexão. Verifique se o servidor está executando."
	MsgTextServiceError  = "Erro ao classificar email"
	MsgFileServiceError  = "Erro ao processar arquivo"
	MsgInFlight          = "Uma análise já está em andamento."
	MsgCopied            = "Resposta copiada para a área de transferência!"
	LabelCopied          = "✅ Copiado!"
	LabelCopy            = "📋 Copiar Resposta"
)

// MessageFor maps an error to the localized text shown in the error panel.
// Anything that is not an input error is reported as a connection problem
// for transport errors, or as the mode's generic failure otherwise.
func MessageFor(err error, kind domain.InputKind) string {
	switch {
	case goerrors.Is(err, errors.ErrEmptyInput):
		return MsgEmptyInput
	case goerrors.Is(err, errors.ErrNoFileSelected):
		return MsgNoFileSelected
	case goerrors.Is(err, errors.ErrUnsupportedFormat):
		return MsgUnsupportedFormat
	case goerrors.Is(err, errors.ErrFileTooLarge):
		return MsgFileTooLarge
	case goerrors.Is(err, errors.ErrSubmissionInFlight):
		return MsgInFlight
	case goerrors.Is(err, errors.ErrLocalRead):
		return ServiceFallback(kind)
	case goerrors.Is(err, errors.ErrTransport):
		return MsgConnection
	default:
		return ServiceFallback(kind)
	}
}

// ServiceFallback is shown when the service fails without a message.
func ServiceFallback(kind domain.InputKind) string {
	if kind == domain.KindFile {
		return MsgFileServiceError
	}
	return MsgTextServiceError
}
