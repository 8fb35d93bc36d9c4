package order

import (
	"fmt"
	"io"
	"time"

	"github.com/vasiliy-maslov/craftcart/internal/money"
)

const DateLayout = "02 Jan 2006"

// WriteStatus refreshes the status and prints the one-line tracking summary.
func (o *Order) WriteStatus(w io.Writer, now time.Time) error {
	o.RefreshStatus(now)
	_, err := fmt.Fprintf(w, "Order ID: %d | Customer: %s | Items: %d | Status: %s | Total: %s | Discount: %s%% | Payable: %s | ETA: %s\n",
		o.ID, o.CustomerName, len(o.Items), o.Status,
		money.Format(o.TotalAmount), money.Percent(o.DiscountRate), money.Format(o.FinalAmount),
		o.DeliveryDate.Format(DateLayout))
	return err
}

// WriteInvoice refreshes the status and prints the itemized invoice.
func (o *Order) WriteInvoice(w io.Writer, now time.Time) error {
	o.RefreshStatus(now)

	ew := &errWriter{w: w}
	ew.printf("\n----Invoice-----\n")
	ew.printf("-------------------\n")
	ew.printf("Order ID     : %d\n", o.ID)
	ew.printf("Customer     : %s\n", o.CustomerName)
	for _, item := range o.Items {
		ew.printf("%s (x%d) - %s\n", item.Product.Name, item.Quantity, money.Format(item.LineTotal()))
	}
	ew.printf("Total Amount : %s\n", money.Format(o.TotalAmount))
	ew.printf("Discount     : %s%%\n", money.Percent(o.DiscountRate))
	ew.printf("Amount Payable: %s\n", money.Format(o.FinalAmount))
	ew.printf("Order Date   : %s\n", o.OrderDate.Format(DateLayout))
	ew.printf("Delivery ETA : %s\n", o.DeliveryDate.Format(DateLayout))
	ew.printf("Status       : %s\n", o.Status)
	ew.printf("----------------------\n")
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
