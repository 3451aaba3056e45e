package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vendordash/internal/model"
	"vendordash/internal/service/vendor"
)

// 终端样式
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

const cellWidth = 36

// RenderDashboard 把看板渲染为终端文本
func RenderDashboard(d vendor.Dashboard) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Vendor Master Dashboard"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Single source of truth for vendor master data"))
	b.WriteString("\n\n")

	switch d.Mode {
	case vendor.ModeAdvanced:
		renderAdvanced(&b, d.Advanced)
	default:
		renderBasic(&b, d.Basic)
	}
	return b.String()
}

// RenderError 渲染致命错误
func RenderError(err error) string {
	return errorStyle.Render("Error: ") + err.Error() + "\n"
}

// RenderPrompt 渲染提示信息
func RenderPrompt(msg string) string {
	return mutedStyle.Render(msg) + "\n"
}

func renderBasic(b *strings.Builder, v *vendor.BasicView) {
	b.WriteString(headerStyle.Render("Vendor overview"))
	b.WriteString("\n")
	if v == nil {
		return
	}
	switch {
	case v.Message != "":
		b.WriteString(RenderPrompt(v.Message))
	case v.Warning != "":
		b.WriteString(warningStyle.Render(v.Warning) + "\n")
	case v.Vendor != nil:
		summary := lipgloss.JoinHorizontal(lipgloss.Top,
			field("Vendor", v.Vendor.Title, cellWidth*2),
			field("Primary location", v.Vendor.Record.Location, cellWidth),
		)
		b.WriteString(boxStyle.Render(summary))
		b.WriteString("\n")
		b.WriteString(renderPanels(v.Vendor.Record))
	}
}

func renderAdvanced(b *strings.Builder, v *vendor.AdvancedView) {
	b.WriteString(headerStyle.Render("Advanced search results"))
	b.WriteString("\n")
	if v == nil {
		return
	}
	b.WriteString(v.Summary + "\n")
	if v.Message != "" {
		b.WriteString(RenderPrompt(v.Message))
		return
	}
	for _, card := range v.Cards {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("▸ " + card.Title))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Location:"), card.Record.Location))
		b.WriteString(renderPanels(card.Record))
	}
}

// renderPanels 联系人与供应商信息，各为 2x2 布局
func renderPanels(r model.VendorRecord) string {
	owner := panel("Owner details",
		[2]string{"Owner name", r.OwnerName}, [2]string{"Phone number", r.Phone},
		[2]string{"Email", r.Email}, [2]string{"Location", r.Location},
	)
	details := panel("Vendor details",
		[2]string{"Category", r.Category}, [2]string{"Cuisine type", r.CuisineText},
		[2]string{"Service model", r.ServiceModel}, [2]string{"Serving capacity", r.ServingCapacity},
	)
	return owner + "\n" + details + "\n"
}

func panel(title string, a, b, c, d [2]string) string {
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, field(a[0], a[1], cellWidth), field(b[0], b[1], cellWidth))
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, field(c[0], c[1], cellWidth), field(d[0], d[1], cellWidth))
	body := lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), row1, row2)
	return boxStyle.Render(body)
}

func field(label, value string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(labelStyle.Render(label) + "\n" + value)
}
