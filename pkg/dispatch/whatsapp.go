// Package dispatch delivers generated artifacts to their destinations:
// local download, backend email, and the WhatsApp share ladder.
package dispatch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/document-export-service/pkg/record"
)

// SharePhoneNumber receives dispatch-list messages.
const SharePhoneNumber = "919360485526"

// BuildDocumentMessage is the text sent alongside a shared document.
func BuildDocumentMessage(ref, date, buyer string) string {
	return fmt.Sprintf(
		"Contract details for %s\n\nContract Date: %s\nBuyer: %s\n\nPlease find the attached contract document.",
		ref, date, buyer)
}

// BuildDispatchMessage renders the fixed-width dispatch summary table sent
// over WhatsApp. Column paddings are part of the message contract.
func BuildDispatchMessage(v *record.DispatchView) string {
	var sizeLines, nameLines []string
	for _, it := range v.Items {
		sizeLines = append(sizeLines,
			"  "+padEnd(it.ItemSize, 10)+" "+padStart(it.Box.String(), 4))
		nameLines = append(nameLines,
			"  "+padEnd(it.ItemName, 25)+padStart(fmt.Sprintf("(%d)", it.Quantity()), 6))
	}

	return "=== DispatchList ===\n" +
		"  No.        : " + v.Dispatch.RefNo + "\n" +
		"  Date       : " + record.DashDate(v.Dispatch.Date) + "\n" +
		"  Party      : " + v.Dispatch.BuyerName + "\n" +
		"  City       : " + v.Dispatch.BuyerCity + "\n" +
		"  VEHICLE NO : " + v.Dispatch.VehicleNo + "\n" +
		"  ===============================\n" +
		"  Product    [SIZE]   (QTY)\n" +
		"  ===============================\n" +
		strings.Join(sizeLines, "\n") + "\n" +
		"  ===============================\n" +
		strings.Join(nameLines, "\n") + "\n" +
		"  ===============================\n" +
		fmt.Sprintf("  Total QTY: %d\n", v.TotalQuantity()) +
		"  ==============================="
}

// DeepLinkURL opens the installed WhatsApp app.
func DeepLinkURL(message string) string {
	return "whatsapp://send?text=" + encodeText(message)
}

// WebURL opens WhatsApp Web with the message prefilled.
func WebURL(message string) string {
	return "https://web.whatsapp.com/send?text=" + encodeText(message)
}

// WaMeURL addresses the message to a specific phone number.
func WaMeURL(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + encodeText(message)
}

// encodeText percent-encodes spaces rather than using '+', which WhatsApp
// endpoints render literally.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func padEnd(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func padStart(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
