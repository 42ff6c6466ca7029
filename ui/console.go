// Package ui renders operator facing output and reads operator input.
// It never decides anything: services tell it what to show.
package ui

import (
	"fmt"
	"io"
	"strings"

	"secret-santa/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const rule = "=================================================="

// smtpHints are well known submission relays shown before prompting.
var smtpHints = [][]string{
	{"Gmail", "smtp.gmail.com", "587"},
	{"Outlook", "smtp-mail.outlook.com", "587"},
	{"Yahoo", "smtp.mail.yahoo.com", "587"},
}

type Console struct {
	out    io.Writer
	colors bool
}

func NewConsole(out io.Writer, colors bool) *Console {
	return &Console{out: out, colors: colors}
}

func (c *Console) paint(style color.Style, text string) string {
	if !c.colors {
		return text
	}
	return style.Render(text)
}

func (c *Console) Banner(title string) {
	fmt.Fprintln(c.out, c.paint(color.New(color.FgRed, color.OpBold), title))
	fmt.Fprintln(c.out, rule)
}

func (c *Console) Info(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *Console) Success(message string) {
	fmt.Fprintln(c.out, c.paint(color.New(color.FgGreen), "✅ "+message))
}

func (c *Console) Warn(message string) {
	fmt.Fprintln(c.out, c.paint(color.New(color.FgYellow), "⚠️  "+message))
}

func (c *Console) Error(message string) {
	fmt.Fprintln(c.out, c.paint(color.New(color.FgRed), "❌ "+message))
}

// Participants lists who takes part in the draw.
func (c *Console) Participants(participants []domain.Participant) {
	c.Info(fmt.Sprintf("\nLoaded %d participants:", len(participants)))
	table := c.table([]string{"Name", "Email"})
	for _, p := range participants {
		table.Append([]string{p.Name, p.Address})
	}
	table.Render()
}

// Pairing prints the whole mapping. Only inspect mode may call it.
func (c *Console) Pairing(pairing domain.Pairing) {
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprintln(c.out, "PAIRINGS:")
	fmt.Fprintln(c.out, rule)
	table := c.table([]string{"Giver", "", "Recipient"})
	for _, a := range pairing.Assignments() {
		table.Append([]string{a.Giver, "→", a.Recipient})
	}
	table.Render()
}

func (c *Console) SMTPHints() {
	c.Info("\nCommon SMTP servers:")
	table := c.table([]string{"Provider", "Host", "Port"})
	table.AppendBulk(smtpHints)
	table.Render()
}

// DeliverySummary reports who was notified. Recipients are not known here.
func (c *Console) DeliverySummary(results []domain.DeliveryResult) {
	for _, r := range results {
		if r.Delivered() {
			fmt.Fprintln(c.out, c.paint(color.New(color.FgGreen), "  ✓ Email sent to "+r.Giver))
			continue
		}
		fmt.Fprintln(c.out, c.paint(color.New(color.FgRed), fmt.Sprintf("  ✗ Failed to send email to %s: %v", r.Giver, r.Err)))
	}
	sent := lo.CountBy(results, func(r domain.DeliveryResult) bool { return r.Delivered() })
	c.Info("")
	if sent == len(results) {
		c.Success(fmt.Sprintf("Complete! Successfully sent %d/%d emails.", sent, len(results)))
		return
	}
	c.Warn(fmt.Sprintf("Sent %d/%d emails. Notify these participants manually:", sent, len(results)))
	failed := lo.Filter(results, func(r domain.DeliveryResult, _ int) bool { return !r.Delivered() })
	table := c.table([]string{"Participant", "Address", "Error"})
	for _, r := range failed {
		table.Append([]string{r.Giver, r.Address, fmt.Sprint(r.Err)})
	}
	table.Render()
}

// DeliveryReport prints the records of a past run from the ledger.
func (c *Console) DeliveryReport(records []domain.DeliveryRecord) {
	if len(records) == 0 {
		c.Info("No delivery run recorded yet.")
		return
	}
	first := records[0]
	c.Info(fmt.Sprintf("Run %s at %s", first.RunID, first.At.Local().Format("2006-01-02 15:04:05")))
	table := c.table([]string{"Participant", "Address", "Status", "Error"})
	for _, r := range records {
		table.Append([]string{r.Giver, r.Address, strings.ToUpper(string(r.Status)), r.Error})
	}
	table.Render()
}

func (c *Console) table(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}
