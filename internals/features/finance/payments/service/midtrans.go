package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap app.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken buat transaksi Snap untuk biaya pendaftaran.
func GenerateSnapToken(orderID string, amount int64, itemName string, cust CustomerInput) (token string, redirectURL string, err error) {
	if amount <= 0 {
		return "", "", errors.New("invalid payment amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    amount,
				Qty:      1,
				Name:     itemName,
				Category: "registration",
			},
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	resp, respErr := SnapClient.CreateTransaction(req)
	if respErr != nil {
		return "", "", respErr
	}
	return resp.Token, resp.RedirectURL, nil
}
