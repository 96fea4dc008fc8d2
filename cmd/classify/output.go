package main

import (
	"email-classifier/domain"
	"email-classifier/ui"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const barWidth = 20

var badgeStyles = map[domain.Category]color.Style{
	domain.Spam:        color.New(color.BgRed, color.FgWhite, color.OpBold),
	domain.Promotional: color.New(color.BgYellow, color.FgBlack),
	domain.Work:        color.New(color.BgBlue, color.FgWhite),
	domain.Personal:    color.New(color.BgGreen, color.FgBlack),
	domain.Important:   color.New(color.BgMagenta, color.FgWhite, color.OpBold),
	domain.Failure:     color.New(color.FgRed, color.OpBold),
	domain.Undefined:   color.New(color.FgWhite, color.OpItalic),
}

func badge(result ui.Result) string {
	text := " " + result.Badge + " "
	if style, ok := badgeStyles[result.Category]; ok {
		return style.Render(text)
	}
	return text
}

func bar(ratio float64) string {
	filled := int(ratio*barWidth + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func printResult(w io.Writer, result ui.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.Append([]string{"Categoria", badge(result)})
	table.Append([]string{"Confiança", bar(result.FillRatio) + " " + result.ConfidenceText})
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resposta sugerida:")
	fmt.Fprintln(w, result.ResponseText)
}

func printError(w io.Writer, message string) {
	fmt.Fprintln(w, color.New(color.FgRed).Render("❌ "+message))
}
