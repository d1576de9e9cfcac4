package utils

import (
	"fmt"
	"html"
	"strings"

	"pickles_back_end/internal/models"
)

// ContactMessage formulaire /contact
type ContactMessage struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

func OrderEmailSubject(order models.Order) string {
	return fmt.Sprintf("📦 Nouvelle commande %s (%d articles)", order.Reference(), len(order.Items))
}

// GenerateOrderHTML récapitulatif envoyé à la boutique. Les doublons restent des lignes séparées.
func GenerateOrderHTML(order models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, `
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd; text-align: right;">₹%s</td>
			</tr>`, html.EscapeString(item.Name), item.Price.StringFixed(2))
	}

	customer := order.Username
	if customer == "" {
		customer = "invité"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Commande %s</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Commande %s</h2>
		<p>Client : %s</p>
		<p>Passée le %s</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Article</th>
					<th style="padding: 8px; text-align: right; border: 1px solid #ddd;">Prix</th>
				</tr>
			</thead>
			<tbody>%s
			</tbody>
			<tfoot>
				<tr>
					<td style="padding: 8px; text-align: right; font-weight: bold;">Total</td>
					<td style="padding: 8px; text-align: right; font-weight: bold;">₹%s</td>
				</tr>
			</tfoot>
		</table>
		<p style="color: #555;">Le QR du reçu est en pièce jointe.</p>
	</div>
</body>
</html>`,
		order.Reference(), order.Reference(), html.EscapeString(customer),
		order.PlacedAt.Format("02/01/2006 15:04"), rows.String(), order.Total.StringFixed(2))
}

func GenerateContactHTML(msg ContactMessage) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif;">
	<h3>Nouveau message de contact</h3>
	<p><strong>%s</strong> &lt;%s&gt;</p>
	<p style="white-space: pre-wrap;">%s</p>
</body>
</html>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message))
}
