package api

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"evstation/models"
)

// renderStatusTable builds the plain-text EVSE overview served by the
// status endpoint.
func renderStatusTable(evses []*models.EVSE) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"EVSE", "Admin", "Status", "Charging", "Transaction", "Reservation"})
	for _, evse := range evses {
		evse.Lock()
		transaction := ""
		if evse.TransactionId != nil {
			transaction = *evse.TransactionId
		}
		reservation := ""
		if evse.ReservationId != nil {
			reservation = strconv.Itoa(*evse.ReservationId)
		}
		t.AppendRow(table.Row{
			evse.Id,
			string(evse.AdminStatus),
			string(evse.Status),
			evse.IsCharging,
			transaction,
			reservation,
		})
		evse.Unlock()
	}
	t.SetStyle(table.StyleLight)
	return t.Render() + "\n"
}
