package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"

	"pickles_back_end/internal/models"
)

const receiptQRSize = 256

// ReceiptPayload texte encodé dans le QR du reçu
func ReceiptPayload(r models.Receipt) string {
	return fmt.Sprintf("PICKLES\n%s\nINR%s\n%d\n%s",
		r.Reference, r.Total.StringFixed(2), r.ItemCount,
		r.PlacedAt.UTC().Format("2006-01-02T15:04:05Z"))
}

// ReceiptQRPNG QR du reçu en PNG (pièce jointe mail)
func ReceiptQRPNG(r models.Receipt) ([]byte, error) {
	return qrcode.Encode(ReceiptPayload(r), qrcode.Medium, receiptQRSize)
}

// ReceiptQRDataURI prêt à mettre dans <img src="...">
func ReceiptQRDataURI(r models.Receipt) (string, error) {
	png, err := ReceiptQRPNG(r)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
